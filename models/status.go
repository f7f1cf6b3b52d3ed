package models

// TicketStatus is the service-visit lifecycle. Strictly ordered; a ticket
// only ever moves forward one step at a time.
type TicketStatus string

const (
	TicketOpen          TicketStatus = "OPEN"
	TicketAssigned      TicketStatus = "ASSIGNED"
	TicketOutForService TicketStatus = "OUT_FOR_SERVICE"
	TicketAtLocation    TicketStatus = "AT_LOCATION"
	TicketResolved      TicketStatus = "RESOLVED"
)

var ticketSequence = []TicketStatus{
	TicketOpen,
	TicketAssigned,
	TicketOutForService,
	TicketAtLocation,
	TicketResolved,
}

// TicketSequence returns the ordered lifecycle for progress rendering.
func TicketSequence() []TicketStatus {
	seq := make([]TicketStatus, len(ticketSequence))
	copy(seq, ticketSequence)
	return seq
}

func (s TicketStatus) Valid() bool {
	for _, v := range ticketSequence {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status and true, or the same status and false
// when s is RESOLVED (terminal) or unknown.
func (s TicketStatus) Next() (TicketStatus, bool) {
	for i, v := range ticketSequence {
		if s == v {
			if i == len(ticketSequence)-1 {
				return s, false
			}
			return ticketSequence[i+1], true
		}
	}
	return s, false
}

// CanTransition reports whether moving from s to to is a legal advance,
// i.e. exactly one step forward.
func (s TicketStatus) CanTransition(to TicketStatus) bool {
	next, ok := s.Next()
	return ok && next == to
}

// OrderStatus is the delivery lifecycle. Same forward-only ordering as
// TicketStatus, but no transition endpoint is exposed in this build.
type OrderStatus string

const (
	OrderProcessing     OrderStatus = "PROCESSING"
	OrderShipped        OrderStatus = "SHIPPED"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
)

var orderSequence = []OrderStatus{
	OrderProcessing,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
}

func OrderSequence() []OrderStatus {
	seq := make([]OrderStatus, len(orderSequence))
	copy(seq, orderSequence)
	return seq
}

func (s OrderStatus) Valid() bool {
	for _, v := range orderSequence {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, v := range orderSequence {
		if s == v {
			if i == len(orderSequence)-1 {
				return s, false
			}
			return orderSequence[i+1], true
		}
	}
	return s, false
}
