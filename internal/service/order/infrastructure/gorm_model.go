package infrastructure

import (
	"time"

	"frankies/internal/service/order/domain"
)

// OrderModel is the database shape of an order. The nested value objects are
// stored as JSON columns, preserving the document layout of the records.
type OrderModel struct {
	ID              string                 `gorm:"primaryKey;size:36"`
	OrderID         string                 `gorm:"column:order_id;size:40;not null;uniqueIndex"`
	Status          string                 `gorm:"size:16;not null"`
	Customer        domain.Customer        `gorm:"serializer:json;not null"`
	Items           []domain.OrderItem     `gorm:"serializer:json;not null"`
	TotalPrice      float64                `gorm:"not null"`
	PaymentInfo     domain.PaymentInfo     `gorm:"serializer:json;not null"`
	DeliveryAddress domain.DeliveryAddress `gorm:"serializer:json;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
