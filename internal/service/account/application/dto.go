package application

import "frankies/internal/service/account/domain"

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest overwrites every mutable field of the fetched record.
type UpdateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Status    string `json:"status,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
	OTP      string `json:"otp,omitempty"`
}

type LoginResponse struct {
	User  domain.Profile `json:"user"`
	Token string         `json:"token"`
}

type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}
