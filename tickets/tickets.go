package tickets

import (
	"context"
	"errors"
	"time"

	"sunsmart/db"
	"sunsmart/models"
	"sunsmart/syncstore"
	"sunsmart/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Technicians is the fixed pool complaints are assigned from.
var Technicians = []string{"Ramesh", "Suresh", "Venkatesh", "Anji", "Srinu"}

// Local tracks tickets created by this process and their sync outcome.
var Local = syncstore.New(func(t models.Ticket) string { return t.ID })

// TicketInput is what a complaint form submits. Everything is optional;
// blanks get the portal defaults.
type TicketInput struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	Issue           string `json:"issue"`
}

// New builds a ticket from a complaint submission: defaults for blank
// fields, a technician from the fixed pool, status ASSIGNED, dated today.
// The id is assigned server-side; a client-supplied id is advisory and only
// kept when it does not collide.
func New(ctx context.Context, in TicketInput, pickTech func(n int) int) models.Ticket {
	t := models.Ticket{
		ID:                 assignID(ctx, in.ID),
		CustomerName:       in.CustomerName,
		CustomerPhone:      in.CustomerPhone,
		CustomerAddress:    in.CustomerAddress,
		Issue:              in.Issue,
		Status:             models.TicketAssigned,
		AssignedTechnician: Technicians[pickTech(len(Technicians))],
		Date:               time.Now().Format("2006-01-02"),
	}
	if t.CustomerName == "" {
		t.CustomerName = "Anonymous"
	}
	if t.CustomerPhone == "" {
		t.CustomerPhone = "N/A"
	}
	if t.CustomerAddress == "" {
		t.CustomerAddress = "Field Visit"
	}
	if t.Issue == "" {
		t.Issue = "Service Request"
	}
	return t
}

// assignID picks a ticket id that is currently free. The document store is
// the id authority; client values are accepted only when unused. Collisions
// racing past the check are caught by the unique index and surface as a
// WriteFailed tag.
func assignID(ctx context.Context, requested string) string {
	if requested != "" && !idTaken(ctx, requested) {
		return requested
	}
	for range [5]int{} {
		id := "TKT-" + utils.GenerateRandomDigitString(4)
		if !idTaken(ctx, id) {
			return id
		}
	}
	return "TKT-" + utils.GenerateRandomDigitString(8)
}

func idTaken(ctx context.Context, id string) bool {
	if db.TicketsCollection == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	n, err := db.TicketsCollection.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		// Store unreachable; optimistic creation proceeds regardless.
		return false
	}
	return n > 0
}

// Persist is the single write attempt behind an optimistic creation.
func Persist(ctx context.Context, t models.Ticket) error {
	if db.TicketsCollection == nil {
		return errors.New("ticket store not configured")
	}
	_, err := db.TicketsCollection.InsertOne(ctx, t)
	return err
}

// Seed inserts the demo worklist when the collection is empty, so a fresh
// install shows the technician view populated.
func Seed(ctx context.Context) error {
	n, err := db.TicketsCollection.CountDocuments(ctx, bson.M{})
	if err != nil || n > 0 {
		return err
	}

	seed := []interface{}{
		models.Ticket{
			ID:                 "TKT-101",
			CustomerName:       "Rajesh Kumar",
			CustomerPhone:      "9985265605",
			CustomerAddress:    "Secunderabad, Telangana",
			Issue:              "Signal lost during light rain",
			Status:             models.TicketOpen,
			AssignedTechnician: "Ramesh",
			Date:               "2023-12-07",
		},
		models.Ticket{
			ID:                 "TKT-102",
			CustomerName:       "Priya Sharma",
			CustomerPhone:      "9848012345",
			CustomerAddress:    "Kukatpally, Hyderabad",
			Issue:              "Remote buttons not working",
			Status:             models.TicketAssigned,
			AssignedTechnician: "Venkatesh",
			Date:               "2023-12-06",
		},
		models.Ticket{
			ID:                 "TKT-103",
			CustomerName:       "Anita Singh",
			CustomerPhone:      "9123456789",
			CustomerAddress:    "Banjara Hills, Hyderabad",
			Issue:              "STB not powering on",
			Status:             models.TicketResolved,
			AssignedTechnician: "Ramesh",
			Date:               "2023-12-05",
		},
	}
	_, err = db.TicketsCollection.InsertMany(ctx, seed)
	return err
}
