package application

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"

	"frankies/internal/service/catalog/domain"
)

// CatalogService is plain CRUD over menu items and categories.
type CatalogService struct {
	menus      domain.MenuRepository
	categories domain.CategoryRepository
	tracer     trace.Tracer
}

func NewCatalogService(menus domain.MenuRepository, categories domain.CategoryRepository, tracer trace.Tracer) *CatalogService {
	return &CatalogService{menus: menus, categories: categories, tracer: tracer}
}

func (s *CatalogService) AddMenuItem(ctx context.Context, req *AddMenuItemRequest) (*MenuItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.AddMenuItem")
	defer span.End()

	item := &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		IsActive:    true,
	}
	if err := s.menus.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "add food menu item")
	}
	return toMenuItemResponse(item), nil
}

// UpdateMenuItem applies a full-field overwrite of the fetched record.
func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, req *UpdateMenuItemRequest) (*MenuItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.UpdateMenuItem")
	defer span.End()

	item, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Image = req.Image
	item.IsActive = req.IsActive

	if err := s.menus.Save(ctx, item); err != nil {
		return nil, errors.Wrap(err, "update food menu item")
	}
	return toMenuItemResponse(item), nil
}

// SetMenuItemActive toggles the availability flag of one menu item.
func (s *CatalogService) SetMenuItemActive(ctx context.Context, id string, active bool) (*MenuItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.SetMenuItemActive")
	defer span.End()

	item, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsActive = active
	if err := s.menus.Save(ctx, item); err != nil {
		return nil, errors.Wrap(err, "update food menu item status")
	}
	return toMenuItemResponse(item), nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) (*MenuItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.DeleteMenuItem")
	defer span.End()

	item, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.menus.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "delete food menu item")
	}
	return toMenuItemResponse(item), nil
}

func (s *CatalogService) ListMenuItems(ctx context.Context) ([]*MenuItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.ListMenuItems")
	defer span.End()

	items, err := s.menus.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list food menu items")
	}
	out := make([]*MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	return out, nil
}

func (s *CatalogService) AddCategory(ctx context.Context, req *CategoryRequest) (*CategoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.AddCategory")
	defer span.End()

	category := &domain.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "add category")
	}
	return toCategoryResponse(category), nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req *CategoryRequest) (*CategoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.UpdateCategory")
	defer span.End()

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Description = req.Description
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, errors.Wrap(err, "update category")
	}
	return toCategoryResponse(category), nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.DeleteCategory")
	defer span.End()

	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return errors.Wrap(s.categories.Delete(ctx, id), "delete category")
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*CategoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.ListCategories")
	defer span.End()

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}
