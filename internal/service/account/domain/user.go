package domain

import "time"

// User is an account record. PasswordHash never leaves this package through
// the Profile projection.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Status       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the sanitized view of a user: no password, no OTP material.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Status:    u.Status,
	}
}
