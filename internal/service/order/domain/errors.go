package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrDuplicateOrderID  = errors.New("duplicate order id")
	ErrMissingFields     = errors.New("order is missing required fields")
)
