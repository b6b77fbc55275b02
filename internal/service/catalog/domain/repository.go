package domain

import "context"

type MenuRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	FindByID(ctx context.Context, id string) (*MenuItem, error)
	Save(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*MenuItem, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Category, error)
}
