package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"frankies/internal/pkg/httpx"
	"frankies/internal/service/order/application"
	"frankies/internal/service/order/domain"
)

// OrderHandler maps the order routes onto the application service.
type OrderHandler struct {
	service  *application.OrderService
	validate *validator.Validate
}

func NewOrderHandler(service *application.OrderService) *OrderHandler {
	return &OrderHandler{service: service, validate: validator.New()}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/orders/place", h.placeOrder)
	r.Put("/api/orders/confirm/{id}", h.confirmOrder)
	r.Put("/api/orders/cancel/{id}", h.cancelOrder)
	r.Get("/api/orders/{orderId}", h.getOrderDetails)
}

func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := extract(r)

	var req application.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.PlaceOrder(ctx, &req)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (h *OrderHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.ConfirmOrder(extract(r), chi.URLParam(r, "id"))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order confirmed successfully",
		"order":   order,
	})
}

func (h *OrderHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.CancelOrder(extract(r), chi.URLParam(r, "id"))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}

func (h *OrderHandler) getOrderDetails(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrderDetails(extract(r), chi.URLParam(r, "orderId"))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		httpx.Error(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		httpx.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrMissingFields):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "Failed to process order request")
	}
}

func extract(r *http.Request) context.Context {
	return otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
}
