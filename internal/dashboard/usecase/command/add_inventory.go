package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
	"github.com/peakstock/stockdeck/pkg/logger"
)

// AddInventoryCommand is the validated add-inventory form.
type AddInventoryCommand struct {
	Brand         string
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryName  string
	WarehouseName string
	Size          string
	Quantity      int
}

// AddInventoryHandler runs the add-inventory workflow: find-or-create the
// product, resolve the warehouse, then create the stock line. Steps run in
// order and short-circuit on the first failure. There is no compensating
// rollback: a product created in step 2 stays in place if a later step fails.
type AddInventoryHandler struct {
	products    domain.ProductRepository
	categories  domain.CategoryRepository
	warehouses  domain.WarehouseRepository
	inventories domain.InventoryRepository
}

// NewAddInventoryHandler creates a new add-inventory handler.
func NewAddInventoryHandler(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	warehouses domain.WarehouseRepository,
	inventories domain.InventoryRepository,
) *AddInventoryHandler {
	return &AddInventoryHandler{
		products:    products,
		categories:  categories,
		warehouses:  warehouses,
		inventories: inventories,
	}
}

// Handle executes the command and returns the created inventory line.
func (h *AddInventoryHandler) Handle(ctx context.Context, cmd AddInventoryCommand) (*domain.Inventory, error) {
	if cmd.Brand == "" || cmd.Name == "" {
		return nil, fmt.Errorf("brand and name are required")
	}
	if cmd.WarehouseName == "" {
		return nil, fmt.Errorf("warehouse is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	product, err := h.products.FindByBrandAndName(ctx, cmd.Brand, cmd.Name)
	switch {
	case domain.IsNotFound(err):
		// Expected on first sighting of this (brand, name) pair.
		product, err = h.createProduct(ctx, cmd)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to look up product: %w", err)
	default:
		// A (brand, name) match is identity; the existing product is reused
		// unchanged even if description or price differ.
		logger.Debug(ctx).
			Uint("product_id", product.ID).
			Str("brand", cmd.Brand).
			Str("name", cmd.Name).
			Msg("Reusing existing product")
	}

	warehouse, err := h.warehouses.FindByName(ctx, cmd.WarehouseName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve warehouse %q: %w", cmd.WarehouseName, err)
	}

	size := cmd.Size
	if size == "" {
		size = view.SizeNA
	}

	inventory := &domain.Inventory{
		ProductID:     product.ID,
		WarehouseName: warehouse.Name,
		Size:          size,
		Quantity:      cmd.Quantity,
	}
	if err := h.inventories.Create(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to create inventory line: %w", err)
	}

	logger.Info(ctx).
		Uint("inventory_id", inventory.ID).
		Uint("product_id", product.ID).
		Str("warehouse", warehouse.Name).
		Int("quantity", cmd.Quantity).
		Msg("Inventory line created")

	return inventory, nil
}

func (h *AddInventoryHandler) createProduct(ctx context.Context, cmd AddInventoryCommand) (*domain.Product, error) {
	category, err := h.categories.FindByName(ctx, cmd.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %q: %w", cmd.CategoryName, err)
	}

	product := &domain.Product{
		Brand:        cmd.Brand,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Price:        cmd.Price,
		CategoryName: category.Name,
	}
	if err := h.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Str("brand", product.Brand).
		Str("name", product.Name).
		Str("category", category.Name).
		Msg("Product created")

	return product, nil
}
