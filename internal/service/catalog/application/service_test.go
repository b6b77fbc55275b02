package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"frankies/internal/service/catalog/domain"
)

type mockMenuRepo struct {
	items map[string]*domain.MenuItem
	next  int
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{items: make(map[string]*domain.MenuItem)}
}

func (m *mockMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	m.next++
	item.ID = "menu-" + strconv.Itoa(m.next)
	m.items[item.ID] = item
	return nil
}

func (m *mockMenuRepo) FindByID(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockMenuRepo) Save(_ context.Context, item *domain.MenuItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockMenuRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockMenuRepo) List(_ context.Context) ([]*domain.MenuItem, error) {
	out := make([]*domain.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

type mockCategoryRepo struct {
	categories map[string]*domain.Category
	next       int
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	m.next++
	c.ID = "cat-" + strconv.Itoa(m.next)
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func newTestCatalog() (*CatalogService, *mockMenuRepo, *mockCategoryRepo) {
	menus := newMockMenuRepo()
	categories := newMockCategoryRepo()
	svc := NewCatalogService(menus, categories, noop.NewTracerProvider().Tracer("test"))
	return svc, menus, categories
}

func TestAddMenuItem(t *testing.T) {
	svc, _, _ := newTestCatalog()

	resp, err := svc.AddMenuItem(context.Background(), &AddMenuItemRequest{
		Name:        "Taco",
		Description: "Crunchy beef taco",
		Price:       5,
		Image:       "taco.png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.True(t, resp.IsActive)
	require.Equal(t, "Taco", resp.Name)
}

func TestUpdateMenuItemOverwritesAllFields(t *testing.T) {
	svc, _, _ := newTestCatalog()

	added, err := svc.AddMenuItem(context.Background(), &AddMenuItemRequest{Name: "Taco", Description: "Old", Price: 5})
	require.NoError(t, err)

	resp, err := svc.UpdateMenuItem(context.Background(), added.ID, &UpdateMenuItemRequest{
		Name:        "Burrito",
		Description: "New",
		Price:       8,
		IsActive:    false,
	})
	require.NoError(t, err)
	require.Equal(t, "Burrito", resp.Name)
	require.Equal(t, 8.0, resp.Price)
	require.False(t, resp.IsActive)
	require.Empty(t, resp.Image)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	svc, _, _ := newTestCatalog()

	_, err := svc.UpdateMenuItem(context.Background(), "missing", &UpdateMenuItemRequest{Name: "x", Description: "y"})
	require.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestSetMenuItemActive(t *testing.T) {
	svc, _, _ := newTestCatalog()

	added, err := svc.AddMenuItem(context.Background(), &AddMenuItemRequest{Name: "Taco", Description: "d", Price: 5})
	require.NoError(t, err)

	resp, err := svc.SetMenuItemActive(context.Background(), added.ID, false)
	require.NoError(t, err)
	require.False(t, resp.IsActive)

	resp, err = svc.SetMenuItemActive(context.Background(), added.ID, true)
	require.NoError(t, err)
	require.True(t, resp.IsActive)
}

func TestDeleteMenuItemReturnsRemovedItem(t *testing.T) {
	svc, menus, _ := newTestCatalog()

	added, err := svc.AddMenuItem(context.Background(), &AddMenuItemRequest{Name: "Taco", Description: "d", Price: 5})
	require.NoError(t, err)

	resp, err := svc.DeleteMenuItem(context.Background(), added.ID)
	require.NoError(t, err)
	require.Equal(t, "Taco", resp.Name)
	require.Empty(t, menus.items)

	_, err = svc.DeleteMenuItem(context.Background(), added.ID)
	require.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestListMenuItems(t *testing.T) {
	svc, _, _ := newTestCatalog()

	for _, name := range []string{"Taco", "Burrito"} {
		_, err := svc.AddMenuItem(context.Background(), &AddMenuItemRequest{Name: name, Description: "d", Price: 5})
		require.NoError(t, err)
	}

	items, err := svc.ListMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestCategoryLifecycle(t *testing.T) {
	svc, _, categories := newTestCatalog()

	added, err := svc.AddCategory(context.Background(), &CategoryRequest{Name: "Mexican", Description: "South of the border"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	updated, err := svc.UpdateCategory(context.Background(), added.ID, &CategoryRequest{Name: "Tex-Mex"})
	require.NoError(t, err)
	require.Equal(t, "Tex-Mex", updated.Name)
	require.Empty(t, updated.Description)

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteCategory(context.Background(), added.ID))
	require.Empty(t, categories.categories)

	err = svc.DeleteCategory(context.Background(), added.ID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
