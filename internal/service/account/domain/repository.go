package domain

import "context"

type UserRepository interface {
	// Create persists a new user, assigning the storage identifier.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
