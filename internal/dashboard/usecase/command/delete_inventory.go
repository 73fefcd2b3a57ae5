package command

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// DeleteInventoryCommand removes one stock line.
type DeleteInventoryCommand struct {
	ID uint
}

// DeleteInventoryHandler handles the delete-inventory command.
type DeleteInventoryHandler struct {
	inventories domain.InventoryRepository
}

// NewDeleteInventoryHandler creates a new delete-inventory handler.
func NewDeleteInventoryHandler(inventories domain.InventoryRepository) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{inventories: inventories}
}

// Handle executes the delete-inventory command.
func (h *DeleteInventoryHandler) Handle(ctx context.Context, cmd DeleteInventoryCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("inventory id is required")
	}
	if err := h.inventories.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete inventory %d: %w", cmd.ID, err)
	}
	return nil
}
