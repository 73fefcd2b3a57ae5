package query

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
)

// ListRowsHandler builds the all-inventory aggregation view: every product's
// lines flattened into one table.
type ListRowsHandler struct {
	products domain.ProductRepository
}

// NewListRowsHandler creates a new list-rows handler.
func NewListRowsHandler(products domain.ProductRepository) *ListRowsHandler {
	return &ListRowsHandler{products: products}
}

// Handle fetches the product collection and flattens it.
func (h *ListRowsHandler) Handle(ctx context.Context) ([]view.InventoryRow, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return view.BuildRows(products), nil
}
