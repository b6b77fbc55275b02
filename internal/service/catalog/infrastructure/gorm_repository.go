package infrastructure

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"frankies/internal/service/catalog/domain"
)

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	model := menuToModel(item)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.Wrap(err, "insert food menu item")
	}
	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *GormMenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var model FoodMenuModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, errors.Wrap(err, "find food menu item")
	}
	return menuToDomain(&model), nil
}

func (r *GormMenuRepository) Save(ctx context.Context, item *domain.MenuItem) error {
	model := menuToModel(item)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "save food menu item")
	}
	item.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *GormMenuRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&FoodMenuModel{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete food menu item")
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *GormMenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	var models []FoodMenuModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "list food menu items")
	}
	items := make([]*domain.MenuItem, 0, len(models))
	for i := range models {
		items = append(items, menuToDomain(&models[i]))
	}
	return items, nil
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	model := categoryToModel(category)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.Wrap(err, "insert category")
	}
	category.ID = model.ID
	category.CreatedAt = model.CreatedAt
	category.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, errors.Wrap(err, "find category")
	}
	return categoryToDomain(&model), nil
}

func (r *GormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	model := categoryToModel(category)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "save category")
	}
	category.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete category")
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	categories := make([]*domain.Category, 0, len(models))
	for i := range models {
		categories = append(categories, categoryToDomain(&models[i]))
	}
	return categories, nil
}

func menuToModel(m *domain.MenuItem) *FoodMenuModel {
	return &FoodMenuModel{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func menuToDomain(m *FoodMenuModel) *domain.MenuItem {
	return &domain.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func categoryToModel(c *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func categoryToDomain(m *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
