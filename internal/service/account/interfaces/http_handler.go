package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"frankies/internal/pkg/httpx"
	"frankies/internal/service/account/application"
	"frankies/internal/service/account/domain"
)

type AccountHandler struct {
	accounts *application.AccountService
	auth     *application.AuthService
	validate *validator.Validate
}

func NewAccountHandler(accounts *application.AccountService, auth *application.AuthService) *AccountHandler {
	return &AccountHandler{accounts: accounts, auth: auth, validate: validator.New()}
}

func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/users/create", h.createUser)
	r.Put("/api/users/update/{id}", h.updateUser)
	r.Delete("/api/users/delete/{id}", h.deleteUser)
	r.Post("/api/users/login", h.login)
	r.Post("/api/users/otp/request", h.requestOTP)
	r.Post("/api/users/otp/verify", h.login)
	r.Get("/api/profile/{userId}", h.getProfile)
	r.Put("/api/profile/{userId}", h.updateProfile)
}

func (h *AccountHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req application.CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	if _, err := h.accounts.AddUser(r.Context(), &req); err != nil {
		writeAccountError(w, err, "Failed to add user")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "User added successfully"})
}

func (h *AccountHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.accounts.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		writeAccountError(w, err, "Failed to update user")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *AccountHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAccountError(w, err, "Failed to delete user")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (h *AccountHandler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		writeAccountError(w, err, "Failed to process login request")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    resp.User,
		"token":   resp.Token,
	})
}

func (h *AccountHandler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req application.RequestOTPRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.auth.RequestOTP(r.Context(), req.Email); err != nil {
		writeAccountError(w, err, "Failed to send one-time code")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "One-time code sent"})
}

func (h *AccountHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accounts.GetUserProfile(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeAccountError(w, err, "Failed to fetch user profile")
		return
	}
	if profile == nil {
		httpx.Error(w, http.StatusNotFound, "User not found")
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}
	profile, err := h.accounts.UpdateUserProfile(r.Context(), chi.URLParam(r, "userId"), &req)
	if err != nil {
		writeAccountError(w, err, "Failed to update user profile")
		return
	}
	if profile == nil {
		httpx.Error(w, http.StatusNotFound, "User not found")
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidOTP):
		httpx.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		httpx.Error(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		httpx.Error(w, http.StatusConflict, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, fallback)
	}
}
