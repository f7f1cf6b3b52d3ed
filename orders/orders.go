package orders

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"sunsmart/db"
	"sunsmart/models"
	"sunsmart/syncstore"
	"sunsmart/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Local tracks orders created by this process and their sync outcome.
var Local = syncstore.New(func(o models.Order) string { return o.ID })

var randIntn = rand.Intn

// AssignIDs fills in the server-side identifiers when the submitter left
// them blank. The record id is a UUID; the tracker id is the short
// human-facing reference printed on invoices.
func AssignIDs(o *models.Order) {
	if o.ID == "" {
		o.ID = utils.GenerateID()
	}
	if o.TrackerID == "" {
		o.TrackerID = NewTrackerID()
	}
}

func NewTrackerID() string {
	return "SRI-TRK-" + utils.GenerateRandomDigitString(4)
}

// Persist is the single write attempt behind an optimistic creation.
func Persist(ctx context.Context, o models.Order) error {
	if db.OrdersCollection == nil {
		return errors.New("order store not configured")
	}
	_, err := db.OrdersCollection.InsertOne(ctx, o)
	return err
}

// FindByID looks an order up in the document store, falling back to the
// local optimistic copies.
func FindByID(ctx context.Context, id string) (models.Order, bool) {
	if db.OrdersCollection != nil {
		var o models.Order
		err := db.OrdersCollection.FindOne(ctx, bson.M{"id": id}).Decode(&o)
		if err == nil {
			return o, true
		}
	}
	for _, r := range Local.Records() {
		if r.Data.ID == id || r.Data.TrackerID == id {
			return r.Data, true
		}
	}
	return models.Order{}, false
}

// DeliveryDate computes the promised delivery: today plus 3 to 6 days.
func DeliveryDate(now time.Time, pick func(n int) int) time.Time {
	return now.AddDate(0, 0, 3+pick(4))
}
