package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// UpdateProductCommand edits an existing product's display fields. Brand and
// name are the product's identity and are not editable here.
type UpdateProductCommand struct {
	ID           uint
	Description  string
	Price        decimal.Decimal
	CategoryName string
}

// UpdateProductHandler handles the update-product command.
type UpdateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewUpdateProductHandler creates a new update-product handler.
func NewUpdateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, categories: categories}
}

// Handle executes the update-product command.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", cmd.ID, err)
	}

	if cmd.CategoryName != "" && cmd.CategoryName != product.CategoryName {
		category, err := h.categories.FindByName(ctx, cmd.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %q: %w", cmd.CategoryName, err)
		}
		product.CategoryName = category.Name
	}

	product.Description = cmd.Description
	product.Price = cmd.Price

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", cmd.ID, err)
	}
	return product, nil
}

// DeleteProductCommand removes a product.
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles the delete-product command.
type DeleteProductHandler struct {
	products domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete-product handler.
func NewDeleteProductHandler(products domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{products: products}
}

// Handle executes the delete-product command.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("product id is required")
	}
	if err := h.products.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", cmd.ID, err)
	}
	return nil
}
