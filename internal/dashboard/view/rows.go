package view

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// SizeNA is the sentinel shown for line items without a meaningful size.
const SizeNA = "N/A"

// InventoryRow is the flattened, denormalized projection the table widget
// consumes: one row per stock line item, with the parent product and
// warehouse fields copied in. Rows are derived, never persisted, and are
// rebuilt in full on every fetch.
type InventoryRow struct {
	ID          uint            `json:"id"`
	Brand       string          `json:"brand"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Warehouse   string          `json:"warehouse"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
}

// ProductResolver loads the full product for an inventory line. The
// by-warehouse payload carries only product IDs, so each line needs one
// lookup before it can be flattened.
type ProductResolver func(ctx context.Context, id uint) (*domain.Product, error)

// BuildRows flattens each product's inventory lines into one row per line
// item. Output order follows input order; sorting is the table widget's
// concern.
func BuildRows(products []domain.Product) []InventoryRow {
	rows := make([]InventoryRow, 0, len(products))
	for _, product := range products {
		for _, line := range product.Inventory {
			rows = append(rows, newRow(product, line))
		}
	}
	return rows
}

// BuildRowsForWarehouse flattens a single warehouse's inventory lines,
// resolving each line's product sequentially before copying its fields in.
func BuildRowsForWarehouse(ctx context.Context, warehouse domain.Warehouse, resolve ProductResolver) ([]InventoryRow, error) {
	rows := make([]InventoryRow, 0, len(warehouse.Inventory))
	for _, line := range warehouse.Inventory {
		product, err := resolve(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d for warehouse %q: %w", line.ProductID, warehouse.Name, err)
		}
		row := newRow(*product, line)
		if row.Warehouse == "" {
			row.Warehouse = warehouse.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func newRow(product domain.Product, line domain.Inventory) InventoryRow {
	size := line.Size
	if size == "" {
		size = SizeNA
	}
	return InventoryRow{
		ID:          line.ID,
		Brand:       product.Brand,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.CategoryName,
		Warehouse:   line.WarehouseName,
		Size:        size,
		Quantity:    line.Quantity,
	}
}
