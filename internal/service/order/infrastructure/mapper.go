package infrastructure

import "frankies/internal/service/order/domain"

func toModel(o *domain.Order) *OrderModel {
	return &OrderModel{
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

func toDomain(m *OrderModel) *domain.Order {
	return &domain.Order{
		ID:              m.ID,
		OrderID:         m.OrderID,
		Status:          domain.Status(m.Status),
		Customer:        m.Customer,
		Items:           m.Items,
		TotalPrice:      m.TotalPrice,
		PaymentInfo:     m.PaymentInfo,
		DeliveryAddress: m.DeliveryAddress,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
