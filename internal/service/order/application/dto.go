package application

import (
	"time"

	"frankies/internal/service/order/domain"
)

type CustomerDTO struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type OrderItemDTO struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type PaymentInfoDTO struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	TransactionID string `json:"transactionId,omitempty"`
}

type DeliveryAddressDTO struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode" validate:"required"`
}

type PlaceOrderRequest struct {
	Customer        CustomerDTO        `json:"customer" validate:"required"`
	Items           []OrderItemDTO     `json:"items" validate:"required,min=1,dive"`
	TotalPrice      float64            `json:"totalPrice" validate:"gte=0"`
	PaymentInfo     PaymentInfoDTO     `json:"paymentInfo" validate:"required"`
	DeliveryAddress DeliveryAddressDTO `json:"deliveryAddress" validate:"required"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	OrderID         string                 `json:"orderId"`
	Status          string                 `json:"status"`
	Customer        domain.Customer        `json:"customer"`
	Items           []domain.OrderItem     `json:"items"`
	TotalPrice      float64                `json:"totalPrice"`
	PaymentInfo     domain.PaymentInfo     `json:"paymentInfo"`
	DeliveryAddress domain.DeliveryAddress `json:"deliveryAddress"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func toOrderResponse(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		OrderID:         o.OrderID,
		Status:          string(o.Status),
		Customer:        o.Customer,
		Items:           o.Items,
		TotalPrice:      o.TotalPrice,
		PaymentInfo:     o.PaymentInfo,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (r *PlaceOrderRequest) toDomain(orderID string) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return domain.NewOrder(
		orderID,
		domain.Customer{Name: r.Customer.Name, Email: r.Customer.Email, Phone: r.Customer.Phone},
		items,
		r.TotalPrice,
		domain.PaymentInfo{PaymentMethod: r.PaymentInfo.PaymentMethod, TransactionID: r.PaymentInfo.TransactionID},
		domain.DeliveryAddress{
			Street:     r.DeliveryAddress.Street,
			City:       r.DeliveryAddress.City,
			State:      r.DeliveryAddress.State,
			PostalCode: r.DeliveryAddress.PostalCode,
		},
	)
}
