package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"frankies/internal/pkg/httpx"
	"frankies/internal/service/catalog/application"
	"frankies/internal/service/catalog/domain"
)

type CatalogHandler struct {
	service  *application.CatalogService
	validate *validator.Validate
}

func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service, validate: validator.New()}
}

func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/foodMenus", h.listMenuItems)
	r.Post("/api/foodMenus/add", h.addMenuItem)
	r.Put("/api/foodMenus/update/{id}", h.updateMenuItem)
	r.Put("/api/foodMenus/active/{id}", h.setMenuItemActive)
	r.Delete("/api/foodMenus/delete/{id}", h.deleteMenuItem)

	r.Get("/api/categories", h.listCategories)
	r.Post("/api/categories/add", h.addCategory)
	r.Put("/api/categories/update/{id}", h.updateCategory)
	r.Delete("/api/categories/delete/{id}", h.deleteCategory)
}

func (h *CatalogHandler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenuItems(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req application.AddMenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.AddMenuItem(r.Context(), &req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Food menu item added successfully",
		"foodMenu": item,
	})
}

func (h *CatalogHandler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateMenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.service.UpdateMenuItem(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Food menu item updated successfully",
		"foodMenu": item,
	})
}

func (h *CatalogHandler) setMenuItemActive(w http.ResponseWriter, r *http.Request) {
	var req application.MenuItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.service.SetMenuItemActive(r.Context(), chi.URLParam(r, "id"), req.IsActive)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Food menu item status updated successfully",
		"foodMenu": item,
	})
}

func (h *CatalogHandler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Food menu item deleted successfully",
		"foodMenu": item,
	})
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) addCategory(w http.ResponseWriter, r *http.Request) {
	var req application.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	category, err := h.service.AddCategory(r.Context(), &req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Category added successfully",
		"category": category,
	})
}

func (h *CatalogHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req application.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Category updated successfully",
		"category": category,
	})
}

func (h *CatalogHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

func (h *CatalogHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
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

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMenuItemNotFound):
		httpx.Error(w, http.StatusNotFound, "Food menu item not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		httpx.Error(w, http.StatusNotFound, "Category not found")
	default:
		httpx.Error(w, http.StatusInternalServerError, "Failed to process catalog request")
	}
}
