package query

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
)

// RowsByWarehouseQuery scopes the inventory table to one warehouse.
type RowsByWarehouseQuery struct {
	WarehouseName string
}

// RowsByWarehouseHandler builds the by-warehouse aggregation view. The
// by-warehouse payload embeds only product IDs, so each line's product is
// resolved sequentially before flattening.
type RowsByWarehouseHandler struct {
	warehouses domain.WarehouseRepository
	products   domain.ProductRepository
}

// NewRowsByWarehouseHandler creates a new rows-by-warehouse handler.
func NewRowsByWarehouseHandler(warehouses domain.WarehouseRepository, products domain.ProductRepository) *RowsByWarehouseHandler {
	return &RowsByWarehouseHandler{warehouses: warehouses, products: products}
}

// Handle fetches the warehouse and flattens its lines.
func (h *RowsByWarehouseHandler) Handle(ctx context.Context, q RowsByWarehouseQuery) ([]view.InventoryRow, error) {
	if q.WarehouseName == "" {
		return nil, fmt.Errorf("warehouse name is required")
	}

	warehouse, err := h.warehouses.FindByName(ctx, q.WarehouseName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouse %q: %w", q.WarehouseName, err)
	}

	return view.BuildRowsForWarehouse(ctx, *warehouse, h.products.FindByID)
}
