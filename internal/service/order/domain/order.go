package domain

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusNew       Status = "New"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// transitions is the full set of legal status changes. Confirmed and
// Cancelled are terminal: a finalized order never silently reverses.
var transitions = map[Status][]Status{
	StatusNew: {StatusConfirmed, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type PaymentInfo struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId,omitempty"`
}

type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
}

// Order is the aggregate root of the order lifecycle.
//
// ID is the storage identifier assigned by the persistence layer; OrderID is
// the business-facing, human-readable identifier assigned at creation. Status
// transitions go through Confirm/Cancel; everything else is immutable after
// creation.
type Order struct {
	ID              string
	OrderID         string
	Status          Status
	Customer        Customer
	Items           []OrderItem
	TotalPrice      float64
	PaymentInfo     PaymentInfo
	DeliveryAddress DeliveryAddress
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrder builds an order in the New state under a freshly generated id.
func NewOrder(orderID string, customer Customer, items []OrderItem, totalPrice float64, payment PaymentInfo, address DeliveryAddress) (*Order, error) {
	if orderID == "" || customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return nil, ErrMissingFields
	}
	return &Order{
		OrderID:         orderID,
		Status:          StatusNew,
		Customer:        customer,
		Items:           items,
		TotalPrice:      totalPrice,
		PaymentInfo:     payment,
		DeliveryAddress: address,
	}, nil
}

func (o *Order) Confirm() error {
	return o.transitionTo(StatusConfirmed)
}

func (o *Order) Cancel() error {
	return o.transitionTo(StatusCancelled)
}

func (o *Order) transitionTo(next Status) error {
	if !o.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}
