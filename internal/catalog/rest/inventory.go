package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// InventoryClient issues inventory CRUD requests against the catalog service.
type InventoryClient struct {
	api *Client
}

// NewInventoryClient creates a new inventory resource client.
func NewInventoryClient(api *Client) *InventoryClient {
	return &InventoryClient{api: api}
}

func (c *InventoryClient) List(ctx context.Context) ([]domain.Inventory, error) {
	var inventories []domain.Inventory
	if err := c.api.do(ctx, http.MethodGet, "/inventory", nil, &inventories); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return inventories, nil
}

func (c *InventoryClient) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/inventory/%d", id), nil, &inventory); err != nil {
		return nil, fmt.Errorf("failed to get inventory %d: %w", id, err)
	}
	return &inventory, nil
}

func (c *InventoryClient) Create(ctx context.Context, inventory *domain.Inventory) error {
	if err := c.api.do(ctx, http.MethodPost, "/inventory", inventory, inventory); err != nil {
		return fmt.Errorf("failed to create inventory: %w", err)
	}
	return nil
}

func (c *InventoryClient) Update(ctx context.Context, inventory *domain.Inventory) error {
	if err := c.api.do(ctx, http.MethodPut, "/inventory", inventory, inventory); err != nil {
		return fmt.Errorf("failed to update inventory %d: %w", inventory.ID, err)
	}
	return nil
}

func (c *InventoryClient) Delete(ctx context.Context, id uint) error {
	if err := c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/inventory/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete inventory %d: %w", id, err)
	}
	return nil
}
