package query

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/capacity"
)

// UtilizationQuery asks for one warehouse's fill level.
type UtilizationQuery struct {
	WarehouseName string
}

// UtilizationHandler reads warehouse utilization for the gating display.
type UtilizationHandler struct {
	warehouses domain.WarehouseRepository
}

// NewUtilizationHandler creates a new utilization handler.
func NewUtilizationHandler(warehouses domain.WarehouseRepository) *UtilizationHandler {
	return &UtilizationHandler{warehouses: warehouses}
}

// Handle fetches the warehouse and returns its utilization.
func (h *UtilizationHandler) Handle(ctx context.Context, q UtilizationQuery) (capacity.Utilization, error) {
	if q.WarehouseName == "" {
		return capacity.Utilization{}, fmt.Errorf("warehouse name is required")
	}

	warehouse, err := h.warehouses.FindByName(ctx, q.WarehouseName)
	if err != nil {
		return capacity.Utilization{}, fmt.Errorf("failed to fetch warehouse %q: %w", q.WarehouseName, err)
	}

	return capacity.Of(*warehouse), nil
}
