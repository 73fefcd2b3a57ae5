package query

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// ListWarehousesHandler backs the warehouses table.
type ListWarehousesHandler struct {
	warehouses domain.WarehouseRepository
}

func NewListWarehousesHandler(warehouses domain.WarehouseRepository) *ListWarehousesHandler {
	return &ListWarehousesHandler{warehouses: warehouses}
}

func (h *ListWarehousesHandler) Handle(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := h.warehouses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouses: %w", err)
	}
	return warehouses, nil
}

// ListCategoriesHandler backs the categories table and form dropdowns.
type ListCategoriesHandler struct {
	categories domain.CategoryRepository
}

func NewListCategoriesHandler(categories domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

func (h *ListCategoriesHandler) Handle(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// ListProductsHandler backs the products table.
type ListProductsHandler struct {
	products domain.ProductRepository
}

func NewListProductsHandler(products domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{products: products}
}

func (h *ListProductsHandler) Handle(ctx context.Context) ([]domain.Product, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
