package domain

import "context"

// Inventory is one stock line item: a product stored in a warehouse at a given
// size and quantity. Size may be free text or the "N/A" sentinel.
type Inventory struct {
	ID            uint   `json:"id"`
	ProductID     uint   `json:"product_id"`
	WarehouseName string `json:"warehouse_name"`
	Size          string `json:"size"`
	Quantity      int    `json:"quantity"`
}

// InventoryRepository defines the contract for inventory data access.
type InventoryRepository interface {
	List(ctx context.Context) ([]Inventory, error)
	FindByID(ctx context.Context, id uint) (*Inventory, error)
	Create(ctx context.Context, inventory *Inventory) error
	Update(ctx context.Context, inventory *Inventory) error
	Delete(ctx context.Context, id uint) error
}
