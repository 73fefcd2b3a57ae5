package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// ProductClient issues product CRUD requests against the catalog service.
type ProductClient struct {
	api *Client
}

// NewProductClient creates a new product resource client.
func NewProductClient(api *Client) *ProductClient {
	return &ProductClient{api: api}
}

func (c *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.api.do(ctx, http.MethodGet, "/product", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (c *ProductClient) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/product/%d", id), nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// FindByBrandAndName looks a product up by its (brand, name) compound key. A
// NotFound failure here is the expected signal that the product does not exist
// yet, not necessarily a fault.
func (c *ProductClient) FindByBrandAndName(ctx context.Context, brand, name string) (*domain.Product, error) {
	var product domain.Product
	path := "/product/brand/" + url.PathEscape(brand) + "/name/" + url.PathEscape(name)
	if err := c.api.do(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s %s: %w", brand, name, err)
	}
	return &product, nil
}

func (c *ProductClient) Create(ctx context.Context, product *domain.Product) error {
	if err := c.api.do(ctx, http.MethodPost, "/product", product, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (c *ProductClient) Update(ctx context.Context, product *domain.Product) error {
	if err := c.api.do(ctx, http.MethodPut, "/product", product, product); err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

func (c *ProductClient) Delete(ctx context.Context, id uint) error {
	if err := c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/product/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
