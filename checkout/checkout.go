package checkout

import (
	"errors"
	"sync"
	"time"

	"sunsmart/models"
	"sunsmart/orders"
)

// Step is the checkout position. Strictly linear; the only backward move is
// ADDRESS back to CART.
type Step string

const (
	StepCart    Step = "CART"
	StepAddress Step = "ADDRESS"
	StepPayment Step = "PAYMENT"
	StepSuccess Step = "SUCCESS"
)

// PaymentMethods is the fixed set a buyer picks from.
var PaymentMethods = []string{"UPI", "CARD", "COD", "NETBANKING"}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrWrongStep     = errors.New("action not valid in current step")
	ErrMissingFields = errors.New("name, phone and address are required")
	ErrBadPayment    = errors.New("unknown payment method")
)

// Address is the delivery target collected in the ADDRESS step.
type Address struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Line1 string `json:"line1"`
	City  string `json:"city"`
}

func (a Address) complete() bool {
	return a.Name != "" && a.Phone != "" && a.Line1 != ""
}

// Flow is one session's walk through checkout.
type Flow struct {
	Step          Step    `json:"step"`
	Address       Address `json:"address"`
	PaymentMethod string  `json:"paymentMethod"`
	TrackerID     string  `json:"trackerId,omitempty"`
}

func NewFlow() *Flow {
	return &Flow{Step: StepCart, Address: Address{City: "Hyderabad"}}
}

// Begin moves CART -> ADDRESS. An empty cart blocks entry. A flow that
// already reached SUCCESS restarts fresh, so the session can shop again.
func (f *Flow) Begin(cartEmpty bool) error {
	if f.Step == StepSuccess {
		*f = *NewFlow()
	}
	if f.Step != StepCart {
		return ErrWrongStep
	}
	if cartEmpty {
		return ErrEmptyCart
	}
	f.Step = StepAddress
	return nil
}

// SetAddress records the delivery target and moves ADDRESS -> PAYMENT.
func (f *Flow) SetAddress(a Address) error {
	if f.Step != StepAddress {
		return ErrWrongStep
	}
	if !a.complete() {
		return ErrMissingFields
	}
	if a.City == "" {
		a.City = "Hyderabad"
	}
	f.Address = a
	f.Step = StepPayment
	return nil
}

// Back returns from ADDRESS to CART; no other backward move exists.
func (f *Flow) Back() error {
	if f.Step != StepAddress {
		return ErrWrongStep
	}
	f.Step = StepCart
	return nil
}

// Complete moves PAYMENT -> SUCCESS and assembles the order: tracker id,
// delivery date three to six days out, status PROCESSING. The caller owns
// persisting the order and clearing the cart.
func (f *Flow) Complete(method string, lines []models.CartLine, total int, pick func(n int) int) (models.Order, error) {
	if f.Step != StepPayment {
		return models.Order{}, ErrWrongStep
	}
	valid := false
	for _, m := range PaymentMethods {
		if m == method {
			valid = true
			break
		}
	}
	if !valid {
		return models.Order{}, ErrBadPayment
	}

	order := models.Order{
		TrackerID:       orders.NewTrackerID(),
		Items:           lines,
		CustomerName:    f.Address.Name,
		CustomerPhone:   f.Address.Phone,
		CustomerAddress: f.Address.Line1 + ", " + f.Address.City,
		Total:           total,
		DeliveryDate:    orders.DeliveryDate(time.Now(), pick),
		Status:          models.OrderProcessing,
	}
	orders.AssignIDs(&order)

	f.PaymentMethod = method
	f.TrackerID = order.TrackerID
	f.Step = StepSuccess
	return order, nil
}

// Store holds per-session checkout flows.
type Store struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func NewStore() *Store {
	return &Store{flows: make(map[string]*Flow)}
}

// Sessions is the process-wide checkout store.
var Sessions = NewStore()

// With runs fn against the session's flow under the store lock, creating a
// fresh flow on first use.
func (s *Store) With(sessionID string, fn func(*Flow)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[sessionID]
	if !ok {
		f = NewFlow()
		s.flows[sessionID] = f
	}
	fn(f)
}
