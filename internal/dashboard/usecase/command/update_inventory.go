package command

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// UpdateInventoryCommand edits one stock line. WarehouseName, when set, is
// re-resolved so a typo surfaces before the write.
type UpdateInventoryCommand struct {
	ID            uint
	WarehouseName string
	Size          string
	Quantity      int
}

// UpdateInventoryHandler handles the update-inventory command.
type UpdateInventoryHandler struct {
	inventories domain.InventoryRepository
	warehouses  domain.WarehouseRepository
}

// NewUpdateInventoryHandler creates a new update-inventory handler.
func NewUpdateInventoryHandler(inventories domain.InventoryRepository, warehouses domain.WarehouseRepository) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{inventories: inventories, warehouses: warehouses}
}

// Handle executes the update-inventory command.
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.Inventory, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("inventory id is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	inventory, err := h.inventories.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory %d: %w", cmd.ID, err)
	}

	if cmd.WarehouseName != "" && cmd.WarehouseName != inventory.WarehouseName {
		warehouse, err := h.warehouses.FindByName(ctx, cmd.WarehouseName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve warehouse %q: %w", cmd.WarehouseName, err)
		}
		inventory.WarehouseName = warehouse.Name
	}

	if cmd.Size != "" {
		inventory.Size = cmd.Size
	}
	inventory.Quantity = cmd.Quantity

	if err := h.inventories.Update(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to update inventory %d: %w", cmd.ID, err)
	}
	return inventory, nil
}
