package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. The pair (brand, name) identifies a product for
// reconciliation: the add-inventory workflow treats a match on both as "this
// product already exists" and never creates a duplicate.
type Product struct {
	ID           uint            `json:"id"`
	Brand        string          `json:"brand"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"category_name"`
	Inventory    []Inventory     `json:"inventory,omitempty"`
}

// ProductRepository defines the contract for product data access.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByBrandAndName(ctx context.Context, brand, name string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
