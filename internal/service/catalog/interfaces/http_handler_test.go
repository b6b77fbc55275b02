package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"frankies/internal/service/catalog/application"
	"frankies/internal/service/catalog/domain"
)

type memMenuRepo struct {
	items map[string]*domain.MenuItem
	next  int
}

func (m *memMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	m.next++
	item.ID = "menu-" + strconv.Itoa(m.next)
	m.items[item.ID] = item
	return nil
}

func (m *memMenuRepo) FindByID(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *memMenuRepo) Save(_ context.Context, item *domain.MenuItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *memMenuRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memMenuRepo) List(_ context.Context) ([]*domain.MenuItem, error) {
	out := make([]*domain.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

type memCategoryRepo struct {
	categories map[string]*domain.Category
	next       int
}

func (m *memCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	m.next++
	c.ID = "cat-" + strconv.Itoa(m.next)
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func newCatalogRouter() chi.Router {
	svc := application.NewCatalogService(
		&memMenuRepo{items: make(map[string]*domain.MenuItem)},
		&memCategoryRepo{categories: make(map[string]*domain.Category)},
		noop.NewTracerProvider().Tracer("test"),
	)
	r := chi.NewRouter()
	NewCatalogHandler(svc).RegisterRoutes(r)
	return r
}

func do(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMenuItemLifecycleOverHTTP(t *testing.T) {
	router := newCatalogRouter()

	rec := do(t, router, http.MethodPost, "/api/foodMenus/add", `{"name": "Taco", "description": "Crunchy beef taco", "price": 5, "image": "taco.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Message  string                        `json:"message"`
		FoodMenu *application.MenuItemResponse `json:"foodMenu"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Food menu item added successfully", envelope.Message)
	require.True(t, envelope.FoodMenu.IsActive)
	id := envelope.FoodMenu.ID

	rec = do(t, router, http.MethodPut, "/api/foodMenus/update/"+id, `{"name": "Burrito", "description": "Big", "price": 8, "isActive": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/foodMenus/active/"+id, `{"isActive": false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.False(t, envelope.FoodMenu.IsActive)

	rec = do(t, router, http.MethodGet, "/api/foodMenus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*application.MenuItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Burrito", list[0].Name)

	rec = do(t, router, http.MethodDelete, "/api/foodMenus/delete/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Food menu item deleted successfully", envelope.Message)
	require.Equal(t, "Burrito", envelope.FoodMenu.Name)

	rec = do(t, router, http.MethodDelete, "/api/foodMenus/delete/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Food menu item not found"}`, rec.Body.String())
}

func TestAddMenuItemValidationOverHTTP(t *testing.T) {
	router := newCatalogRouter()

	rec := do(t, router, http.MethodPost, "/api/foodMenus/add", `{"price": 5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	router := newCatalogRouter()

	rec := do(t, router, http.MethodPost, "/api/categories/add", `{"name": "Mexican", "description": "South of the border"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Message  string                        `json:"message"`
		Category *application.CategoryResponse `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Category added successfully", envelope.Message)
	id := envelope.Category.ID

	rec = do(t, router, http.MethodPut, "/api/categories/update/"+id, `{"name": "Tex-Mex"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*application.CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Tex-Mex", list[0].Name)

	rec = do(t, router, http.MethodDelete, "/api/categories/delete/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/categories/update/"+id, `{"name": "x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Category not found"}`, rec.Body.String())
}
