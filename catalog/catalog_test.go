package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sunsmart/models"

	"github.com/julienschmidt/httprouter"
)

func TestCatalogContents(t *testing.T) {
	got := Parts()
	if len(got) != 7 {
		t.Fatalf("expected 7 parts, got %d", len(got))
	}

	costs := map[string]int{
		"1": 850, "2": 249, "3": 499, "4": 450, "5": 599, "6": 2999, "7": 299,
	}
	for _, p := range got {
		if want, ok := costs[p.ID]; !ok || p.Cost != want {
			t.Errorf("part %s: cost %d, want %d", p.ID, p.Cost, want)
		}
		if p.Name == "" || p.Category == "" || p.Stock <= 0 {
			t.Errorf("part %s has incomplete data: %+v", p.ID, p)
		}
	}
}

func TestPartsReturnsCopy(t *testing.T) {
	first := Parts()
	first[0].Cost = 1

	again := Parts()
	if again[0].Cost == 1 {
		t.Error("Parts exposes internal slice")
	}
}

func TestFind(t *testing.T) {
	p, ok := Find("6")
	if !ok {
		t.Fatal("part 6 not found")
	}
	if p.Name != "4K Ultra HD STB" || p.Cost != 2999 {
		t.Errorf("unexpected part: %+v", p)
	}

	if _, ok := Find("99"); ok {
		t.Error("found a part that does not exist")
	}
}

func TestPartHandlers(t *testing.T) {
	router := httprouter.New()
	router.GET("/api/parts", GetParts)
	router.GET("/api/parts/:id", GetPart)

	req := httptest.NewRequest("GET", "/api/parts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var list []models.Part
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 7 {
		t.Errorf("expected 7 parts over HTTP, got %d", len(list))
	}

	req = httptest.NewRequest("GET", "/api/parts/3", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var part models.Part
	if err := json.Unmarshal(rec.Body.Bytes(), &part); err != nil {
		t.Fatal(err)
	}
	if part.Name != "Universal Remote Control" {
		t.Errorf("unexpected part: %+v", part)
	}

	req = httptest.NewRequest("GET", "/api/parts/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown part, got %d", rec.Code)
	}
}
