package cart

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"sunsmart/activity"
	"sunsmart/catalog"
	"sunsmart/models"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

type cartView struct {
	Items    []models.CartLine `json:"items"`
	Count    int               `json:"count"`
	Subtotal int               `json:"subtotal"`
	Tax      int               `json:"tax"`
	Total    int               `json:"total"`
}

func snapshot(c *Cart) cartView {
	return cartView{
		Items:    c.Lines(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
		Tax:      c.Tax(),
		Total:    c.Total(),
	}
}

// GetCart returns the session's cart with derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var view cartView
	Sessions.With(sid, func(c *Cart) { view = snapshot(c) })
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// AddItem merges a part into the session's cart.
func AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var payload struct {
		PartID   string `json:"partId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	part, ok := catalog.Find(payload.PartID)
	if !ok {
		http.Error(w, "Unknown part", http.StatusNotFound)
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	var view cartView
	Sessions.With(sid, func(c *Cart) {
		c.Add(part, payload.Quantity)
		view = snapshot(c)
	})

	activity.Log(models.ActivityCart,
		fmt.Sprintf("Added %dx %s", payload.Quantity, part.Name),
		fmt.Sprintf("Item total: ₹%d", part.Cost*payload.Quantity))

	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// UpdateItem applies a quantity delta to one line.
func UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var view cartView
	Sessions.With(sid, func(c *Cart) {
		c.UpdateQuantity(ps.ByName("id"), payload.Delta)
		view = snapshot(c)
	})
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// RemoveItem drops one line from the cart.
func RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var view cartView
	Sessions.With(sid, func(c *Cart) {
		c.Remove(ps.ByName("id"))
		view = snapshot(c)
	})
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// ClearCart empties the session's cart.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	Sessions.With(sid, func(c *Cart) { c.Clear() })
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
