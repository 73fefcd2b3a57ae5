package domain

import "context"

// Category groups products under a unique name.
type Category struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}

// CategoryRepository defines the contract for category data access.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
}
