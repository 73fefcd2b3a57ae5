package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// WarehouseClient issues warehouse CRUD requests against the catalog service.
type WarehouseClient struct {
	api *Client
}

// NewWarehouseClient creates a new warehouse resource client.
func NewWarehouseClient(api *Client) *WarehouseClient {
	return &WarehouseClient{api: api}
}

func (c *WarehouseClient) List(ctx context.Context) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	if err := c.api.do(ctx, http.MethodGet, "/warehouse", nil, &warehouses); err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return warehouses, nil
}

func (c *WarehouseClient) FindByID(ctx context.Context, id uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/warehouse/%d", id), nil, &warehouse); err != nil {
		return nil, fmt.Errorf("failed to get warehouse %d: %w", id, err)
	}
	return &warehouse, nil
}

func (c *WarehouseClient) FindByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	path := "/warehouse/name/" + url.PathEscape(name)
	if err := c.api.do(ctx, http.MethodGet, path, nil, &warehouse); err != nil {
		return nil, fmt.Errorf("failed to get warehouse %q: %w", name, err)
	}
	return &warehouse, nil
}

func (c *WarehouseClient) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	if err := c.api.do(ctx, http.MethodPost, "/warehouse", warehouse, warehouse); err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}
	return nil
}

func (c *WarehouseClient) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	if err := c.api.do(ctx, http.MethodPut, "/warehouse", warehouse, warehouse); err != nil {
		return fmt.Errorf("failed to update warehouse %d: %w", warehouse.ID, err)
	}
	return nil
}

func (c *WarehouseClient) Delete(ctx context.Context, id uint) error {
	if err := c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/warehouse/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete warehouse %d: %w", id, err)
	}
	return nil
}
