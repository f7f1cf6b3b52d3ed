package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"sunsmart/activity"
	"sunsmart/events"
	"sunsmart/models"
	"sunsmart/tickets"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

// Apology is the fixed text shown when the relay cannot produce a
// completion. Failures never surface as an error to the end user.
const Apology = "An error occurred while connecting to our support servers. Please try again later."

// SystemInstruction is the fixed business identity attached when the client
// sends none of its own.
const SystemInstruction = `You are the AI Assistant for SRI THIRUMALA ENTERPRISES, an authorized Sun Direct DTH service provider.

Business Identity:
- Name: SRI THIRUMALA ENTERPRISES
- Support Number: 9985265605

Inventory Knowledge (6 Core Parts):
1. Satellite Antenna Dish (Blue): ₹850
2. Remote Control (Standard/Universal): ₹399
3. RG6 Coaxial Cable (30m Roll): ₹450
4. Dual LNB (Signal Receiver): ₹599
5. 4K Ultra HD STB (HSG200): ₹1999
6. HDMI 2.1 Cable (8K Ready): ₹299

Guidelines: Professional, local, helpful. Support: 9985265605. If customers ask about hardware, refer to the prices above.`

// Provider is the injected generative-text backend. main wires the real
// Gemini client; tests install stubs.
var Provider Completer

type chatRequest struct {
	Message           string               `json:"message"`
	History           []models.ChatMessage `json:"history"`
	SystemInstruction string               `json:"systemInstruction"`
}

// Relay forwards one message plus transcript history to the text-generation
// provider and returns only the plain completion. Stateless per call: the
// client owns the transcript.
func Relay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("Relay decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	activity.Log(models.ActivityChat, "AI Message Sent", req.Message)

	system := req.SystemInstruction
	if system == "" {
		system = SystemInstruction
	}

	text := Apology
	if Provider != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()
		reply, err := Provider.Complete(ctx, req.Message, req.History, system)
		if err != nil {
			log.Println("chat completion:", err)
		} else if reply == "" {
			text = "I'm sorry, I couldn't process that request."
		} else {
			text = reply
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"text": text})
}

// RaiseVisit handles the manual service-visit form inside the chat surface.
// It synthesizes a ticket exactly like the complaint path and returns the
// scripted confirmation for the transcript.
func RaiseVisit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in tickets.TicketInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Println("RaiseVisit decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ticket := tickets.New(r.Context(), in, rand.Intn)
	tickets.Local.Put(ticket, tickets.Persist)

	activity.Log(models.ActivityForm,
		fmt.Sprintf("Raised Complaint: %s", ticket.ID),
		fmt.Sprintf("Typed: %q for address %q", ticket.Issue, ticket.CustomerAddress))
	events.Emit(events.Event{Kind: events.KindTicketCreated, Payload: ticket})

	confirmation := fmt.Sprintf(
		"Got it! I've registered a service request for %q. One of our technicians will visit your home shortly. You can track visit status in the Technician/Jobs Portal.",
		ticket.Issue)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"ticket":       ticket,
		"confirmation": models.ChatMessage{Role: "model", Text: confirmation},
	})
}
