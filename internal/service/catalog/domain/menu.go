package domain

import "time"

// MenuItem is one entry of the food menu.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
