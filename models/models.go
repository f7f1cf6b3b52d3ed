package models

import "time"

// Part is a catalog item. Reference data, never mutated at runtime.
type Part struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Description string `json:"description" bson:"description"`
	Cost        int    `json:"cost" bson:"cost"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
	Stock       int    `json:"stock" bson:"stock"`
}

// CartLine is one part plus a quantity inside a session cart.
type CartLine struct {
	Part     Part `json:"part" bson:"part"`
	Quantity int  `json:"quantity" bson:"quantity"`
}

// Ticket is a field-service request.
type Ticket struct {
	ID                 string       `json:"id" bson:"id"`
	CustomerName       string       `json:"customerName" bson:"customerName"`
	CustomerPhone      string       `json:"customerPhone" bson:"customerPhone"`
	CustomerAddress    string       `json:"customerAddress" bson:"customerAddress"`
	Issue              string       `json:"issue" bson:"issue"`
	Status             TicketStatus `json:"status" bson:"status"`
	AssignedTechnician string       `json:"assignedTechnician,omitempty" bson:"assignedTechnician,omitempty"`
	Date               string       `json:"date" bson:"date"` // YYYY-MM-DD
}

// Order is a finalized hardware purchase. Set once at creation,
// never advanced in this build.
type Order struct {
	ID              string      `json:"id" bson:"id"`
	TrackerID       string      `json:"trackerId" bson:"trackerId"`
	Items           []CartLine  `json:"items" bson:"items"`
	CustomerName    string      `json:"customerName" bson:"customerName"`
	CustomerPhone   string      `json:"customerPhone" bson:"customerPhone"`
	CustomerAddress string      `json:"customerAddress" bson:"customerAddress"`
	Total           int         `json:"total" bson:"total"`
	DeliveryDate    time.Time   `json:"deliveryDate" bson:"deliveryDate"`
	Status          OrderStatus `json:"status" bson:"status"`
}

// Activity is an ephemeral log entry. Process-lifetime only, never persisted.
type Activity struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"` // CHAT | FORM | CART | SEARCH
	Label     string `json:"label"`
	Content   string `json:"content"`
}

const (
	ActivityChat   = "CHAT"
	ActivityForm   = "FORM"
	ActivityCart   = "CART"
	ActivitySearch = "SEARCH"
)

// ChatMessage is one turn of a support-chat transcript.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}
