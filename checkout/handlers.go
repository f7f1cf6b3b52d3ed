package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"sunsmart/activity"
	"sunsmart/cart"
	"sunsmart/events"
	"sunsmart/models"
	"sunsmart/orders"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

func respondFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrWrongStep):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	}
}

// GetCheckout reports the session's current checkout position.
func GetCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var view Flow
	Sessions.With(sid, func(f *Flow) { view = *f })
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// BeginCheckout moves the session from CART to ADDRESS.
func BeginCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	empty := true
	cart.Sessions.With(sid, func(c *cart.Cart) { empty = c.Empty() })

	var view Flow
	var flowErr error
	Sessions.With(sid, func(f *Flow) {
		flowErr = f.Begin(empty)
		view = *f
	})
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// SubmitAddress records delivery details and moves ADDRESS to PAYMENT.
func SubmitAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var addr Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		log.Println("SubmitAddress decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var view Flow
	var flowErr error
	Sessions.With(sid, func(f *Flow) {
		flowErr = f.SetAddress(addr)
		view = *f
	})
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// StepBack returns from ADDRESS to CART.
func StepBack(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var view Flow
	var flowErr error
	Sessions.With(sid, func(f *Flow) {
		flowErr = f.Back()
		view = *f
	})
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// SubmitPayment completes checkout: the order is assembled, handed to the
// background persist and the cart cleared. The response carries the order
// immediately; a failed write later never rolls any of this back.
func SubmitPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.EnsureSessionID(w, r)

	var payload struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("SubmitPayment decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var lines []models.CartLine
	var total int
	cart.Sessions.With(sid, func(c *cart.Cart) {
		lines = c.Lines()
		total = c.Total()
	})

	var order models.Order
	var flowErr error
	Sessions.With(sid, func(f *Flow) {
		order, flowErr = f.Complete(payload.Method, lines, total, rand.Intn)
	})
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	orders.Local.Put(order, orders.Persist)
	cart.Sessions.With(sid, func(c *cart.Cart) { c.Clear() })

	activity.Log(models.ActivityForm,
		fmt.Sprintf("Placed Order: %s", order.TrackerID),
		fmt.Sprintf("Delivering to: %s", order.CustomerAddress))
	events.Emit(events.Event{Kind: events.KindOrderPlaced, Payload: order})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"step":  StepSuccess,
		"order": order,
	})
}
