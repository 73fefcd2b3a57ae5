package query

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
)

// RowsByCategoryQuery scopes the inventory table to one category.
type RowsByCategoryQuery struct {
	CategoryName string
}

// RowsByCategoryHandler builds the by-category aggregation view.
type RowsByCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewRowsByCategoryHandler creates a new rows-by-category handler.
func NewRowsByCategoryHandler(categories domain.CategoryRepository) *RowsByCategoryHandler {
	return &RowsByCategoryHandler{categories: categories}
}

// Handle fetches the category with its products and flattens their lines.
func (h *RowsByCategoryHandler) Handle(ctx context.Context, q RowsByCategoryQuery) ([]view.InventoryRow, error) {
	if q.CategoryName == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category, err := h.categories.FindByName(ctx, q.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category %q: %w", q.CategoryName, err)
	}

	return view.BuildRows(category.Products), nil
}
