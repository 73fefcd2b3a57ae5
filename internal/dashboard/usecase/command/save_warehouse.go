package command

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// SaveWarehouseCommand backs the warehouse form for both create (ID zero)
// and edit (ID set).
type SaveWarehouseCommand struct {
	ID          uint
	Name        string
	MaxCapacity int
	Street      string
	City        string
	State       string
	Zip         string
}

// SaveWarehouseHandler handles warehouse create and update.
type SaveWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewSaveWarehouseHandler creates a new save-warehouse handler.
func NewSaveWarehouseHandler(warehouses domain.WarehouseRepository) *SaveWarehouseHandler {
	return &SaveWarehouseHandler{warehouses: warehouses}
}

// Handle executes the save-warehouse command.
func (h *SaveWarehouseHandler) Handle(ctx context.Context, cmd SaveWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("warehouse name is required")
	}
	if cmd.MaxCapacity <= 0 {
		return nil, fmt.Errorf("max capacity must be positive")
	}

	warehouse := &domain.Warehouse{
		ID:          cmd.ID,
		Name:        cmd.Name,
		MaxCapacity: cmd.MaxCapacity,
		Street:      cmd.Street,
		City:        cmd.City,
		State:       cmd.State,
		Zip:         cmd.Zip,
	}

	if cmd.ID == 0 {
		if err := h.warehouses.Create(ctx, warehouse); err != nil {
			return nil, fmt.Errorf("failed to create warehouse: %w", err)
		}
		return warehouse, nil
	}

	if err := h.warehouses.Update(ctx, warehouse); err != nil {
		return nil, fmt.Errorf("failed to update warehouse %d: %w", cmd.ID, err)
	}
	return warehouse, nil
}

// DeleteWarehouseCommand removes a warehouse.
type DeleteWarehouseCommand struct {
	ID uint
}

// DeleteWarehouseHandler handles the delete-warehouse command.
type DeleteWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewDeleteWarehouseHandler creates a new delete-warehouse handler.
func NewDeleteWarehouseHandler(warehouses domain.WarehouseRepository) *DeleteWarehouseHandler {
	return &DeleteWarehouseHandler{warehouses: warehouses}
}

// Handle executes the delete-warehouse command.
func (h *DeleteWarehouseHandler) Handle(ctx context.Context, cmd DeleteWarehouseCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("warehouse id is required")
	}
	if err := h.warehouses.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete warehouse %d: %w", cmd.ID, err)
	}
	return nil
}
