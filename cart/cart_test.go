package cart

import (
	"testing"

	"sunsmart/models"
)

func part(id string, cost int) models.Part {
	return models.Part{ID: id, Name: "part-" + id, Cost: cost}
}

func TestAddMergesByPartID(t *testing.T) {
	c := &Cart{}
	c.Add(part("1", 850), 1)
	c.Add(part("1", 850), 2)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddClampsQuantityToOne(t *testing.T) {
	c := &Cart{}
	c.Add(part("1", 100), 0)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
}

func TestUpdateQuantityNeverBelowOne(t *testing.T) {
	c := &Cart{}
	c.Add(part("1", 100), 2)

	c.UpdateQuantity("1", -5)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}

	// decrement never removes the line
	c.UpdateQuantity("1", -1)
	if len(c.Lines()) != 1 {
		t.Fatal("decrement removed the line")
	}
}

func TestRemove(t *testing.T) {
	c := &Cart{}
	c.Add(part("1", 100), 1)
	c.Add(part("2", 200), 1)

	c.Remove("1")
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Part.ID != "2" {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}
}

func TestTotalsWorkedExample(t *testing.T) {
	// {cost:850,qty:1},{cost:450,qty:2} => subtotal 1750, tax 315, total 2065
	c := &Cart{}
	c.Add(part("1", 850), 1)
	c.Add(part("4", 450), 2)

	if got := c.Subtotal(); got != 1750 {
		t.Errorf("subtotal: expected 1750, got %d", got)
	}
	if got := c.Tax(); got != 315 {
		t.Errorf("tax: expected 315, got %d", got)
	}
	if got := c.Total(); got != 2065 {
		t.Errorf("total: expected 2065, got %d", got)
	}
}

func TestTotalsUnderMutationSequences(t *testing.T) {
	type op struct {
		kind  string
		id    string
		cost  int
		qty   int
		delta int
	}
	cases := []struct {
		name string
		ops  []op
	}{
		{"add remove add", []op{
			{kind: "add", id: "1", cost: 299, qty: 3},
			{kind: "remove", id: "1"},
			{kind: "add", id: "2", cost: 2999, qty: 1},
		}},
		{"updates clamp", []op{
			{kind: "add", id: "1", cost: 599, qty: 1},
			{kind: "upd", id: "1", delta: -10},
			{kind: "upd", id: "1", delta: 4},
		}},
		{"merge and clear", []op{
			{kind: "add", id: "1", cost: 450, qty: 2},
			{kind: "add", id: "1", cost: 450, qty: 2},
			{kind: "clear"},
			{kind: "add", id: "2", cost: 249, qty: 1},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Cart{}
			for _, o := range tc.ops {
				switch o.kind {
				case "add":
					c.Add(part(o.id, o.cost), o.qty)
				case "remove":
					c.Remove(o.id)
				case "upd":
					c.UpdateQuantity(o.id, o.delta)
				case "clear":
					c.Clear()
				}
			}

			want := 0
			for _, l := range c.Lines() {
				if l.Quantity < 1 {
					t.Fatalf("line %s has quantity %d", l.Part.ID, l.Quantity)
				}
				want += l.Part.Cost * l.Quantity
			}
			if got := c.Subtotal(); got != want {
				t.Errorf("subtotal: expected %d, got %d", want, got)
			}
			if got := c.Total(); got != c.Subtotal()+c.Tax() {
				t.Errorf("total %d != subtotal %d + tax %d", got, c.Subtotal(), c.Tax())
			}
		})
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.Add(part("1", 100), 5)
	c.Clear()
	if !c.Empty() || c.Total() != 0 {
		t.Fatal("cart not empty after clear")
	}
}
