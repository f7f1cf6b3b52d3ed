package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sunsmart/db"
	"sunsmart/events"
	"sunsmart/models"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrders lists all orders, latest delivery date first, with unsynced
// local creations overlaid at the head.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var persisted []models.Order
	if db.OrdersCollection != nil {
		cursor, err := db.OrdersCollection.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "deliveryDate", Value: -1}}))
		if err != nil {
			log.Println("GetOrders Find error:", err)
		} else {
			defer cursor.Close(ctx)
			if err := cursor.All(ctx, &persisted); err != nil {
				log.Println("GetOrders cursor.All error:", err)
				persisted = nil
			}
		}
	}

	list := Local.Overlay(persisted)
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateOrder accepts an order document, assigns server-side identifiers for
// blank ones and persists it in the background. The locally constructed
// record is echoed with 201 regardless of how the write later fares.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Println("CreateOrder decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if len(order.Items) == 0 {
		http.Error(w, "Order has no items", http.StatusBadRequest)
		return
	}

	AssignIDs(&order)
	if !order.Status.Valid() {
		order.Status = models.OrderProcessing
	}
	if order.DeliveryDate.IsZero() {
		order.DeliveryDate = DeliveryDate(time.Now(), randIntn)
	}

	Local.Put(order, Persist)
	events.Emit(events.Event{Kind: events.KindOrderPlaced, Payload: order})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// TrackOrder returns the most recent order for the tracking view, or an
// explicit empty-state so the client renders "no active order" instead of
// an error.
func TrackOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var persisted []models.Order
	if db.OrdersCollection != nil {
		cursor, err := db.OrdersCollection.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "deliveryDate", Value: -1}}).SetLimit(1))
		if err == nil {
			defer cursor.Close(ctx)
			if err := cursor.All(ctx, &persisted); err != nil {
				persisted = nil
			}
		}
	}

	list := Local.Overlay(persisted)
	if len(list) == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"active": false,
			"reason": "no active orders",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"active": true,
		"order":  list[0],
		"steps":  models.OrderSequence(),
	})
}
