package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"sunsmart/activity"
	"sunsmart/db"
	"sunsmart/events"
	"sunsmart/models"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTickets lists all tickets, newest date first. Tickets created here
// whose write never landed are overlaid at the head so the worklist matches
// what the creator was shown.
func GetTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var persisted []models.Ticket
	if db.TicketsCollection != nil {
		cursor, err := db.TicketsCollection.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
		if err != nil {
			log.Println("GetTickets Find error:", err)
		} else {
			defer cursor.Close(ctx)
			if err := cursor.All(ctx, &persisted); err != nil {
				log.Println("GetTickets cursor.All error:", err)
				persisted = nil
			}
		}
	}

	list := Local.Overlay(persisted)
	if list == nil {
		list = []models.Ticket{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateTicket registers a complaint. The response carries the locally
// constructed record immediately; persistence happens in the background and
// a failure there keeps the optimistic copy (no rollback, no retry).
func CreateTicket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in TicketInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Println("CreateTicket decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ticket := New(r.Context(), in, rand.Intn)
	Local.Put(ticket, Persist)

	activity.Log(models.ActivityForm,
		fmt.Sprintf("Raised Complaint: %s", ticket.ID),
		fmt.Sprintf("Typed: %q for address %q", ticket.Issue, ticket.CustomerAddress))
	events.Emit(events.Event{Kind: events.KindTicketCreated, Payload: ticket})

	utils.RespondWithJSON(w, http.StatusCreated, ticket)
}

// UpdateTicketStatus applies a status advance. Transitions are validated
// here with the same ordered contract the UI uses: exactly one step forward,
// RESOLVED terminal. Last write wins between concurrent technicians; there
// is no version check.
func UpdateTicketStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	id := ps.ByName("id")

	var payload struct {
		Status models.TicketStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateTicketStatus decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !payload.Status.Valid() {
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}

	if db.TicketsCollection == nil {
		updateLocalOnly(w, id, payload.Status)
		return
	}

	var current models.Ticket
	err := db.TicketsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&current)
	if err == mongo.ErrNoDocuments {
		// Not persisted (yet); the optimistic copy may still exist locally.
		updateLocalOnly(w, id, payload.Status)
		return
	}
	if err != nil {
		log.Println("UpdateTicketStatus FindOne error:", err)
		http.Error(w, "Failed to load ticket", http.StatusInternalServerError)
		return
	}

	if !current.Status.CanTransition(payload.Status) {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("illegal transition %s -> %s", current.Status, payload.Status))
		return
	}

	update := bson.M{"$set": bson.M{"status": payload.Status}}
	if _, err := db.TicketsCollection.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		log.Println("UpdateTicketStatus UpdateOne error:", err)
		http.Error(w, "Failed to update ticket", http.StatusInternalServerError)
		return
	}
	current.Status = payload.Status
	Local.Update(id, func(t *models.Ticket) { t.Status = payload.Status })

	events.Emit(events.Event{Kind: events.KindTicketAdvanced, Payload: current})
	utils.RespondWithJSON(w, http.StatusOK, current)
}

func updateLocalOnly(w http.ResponseWriter, id string, status models.TicketStatus) {
	var updated models.Ticket
	var legal bool
	found := Local.Update(id, func(t *models.Ticket) {
		if t.Status.CanTransition(status) {
			t.Status = status
			legal = true
		}
		updated = *t
	})
	if !found {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}
	if !legal {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("illegal transition %s -> %s", updated.Status, status))
		return
	}
	events.Emit(events.Event{Kind: events.KindTicketAdvanced, Payload: updated})
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
