package domain

import "errors"

var (
	ErrMenuItemNotFound = errors.New("food menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
)
