package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// CategoryClient issues category CRUD requests against the catalog service.
type CategoryClient struct {
	api *Client
}

// NewCategoryClient creates a new category resource client.
func NewCategoryClient(api *Client) *CategoryClient {
	return &CategoryClient{api: api}
}

func (c *CategoryClient) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.api.do(ctx, http.MethodGet, "/category", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryClient) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/category/%d", id), nil, &category); err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

func (c *CategoryClient) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	path := "/category/name/" + url.PathEscape(name)
	if err := c.api.do(ctx, http.MethodGet, path, nil, &category); err != nil {
		return nil, fmt.Errorf("failed to get category %q: %w", name, err)
	}
	return &category, nil
}

func (c *CategoryClient) Create(ctx context.Context, category *domain.Category) error {
	if err := c.api.do(ctx, http.MethodPost, "/category", category, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (c *CategoryClient) Update(ctx context.Context, category *domain.Category) error {
	if err := c.api.do(ctx, http.MethodPut, "/category", category, category); err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	return nil
}

func (c *CategoryClient) Delete(ctx context.Context, id uint) error {
	if err := c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/category/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
