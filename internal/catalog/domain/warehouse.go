package domain

import "context"

// Warehouse is a physical storage location tracked by the upstream catalog.
// CurrentCapacity is reported by the catalog service and is the authoritative
// fill level; the dashboard never re-derives it from line items.
type Warehouse struct {
	ID              uint        `json:"id"`
	Name            string      `json:"name"`
	MaxCapacity     int         `json:"max_capacity"`
	CurrentCapacity int         `json:"current_capacity"`
	Street          string      `json:"street"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	Zip             string      `json:"zip"`
	Inventory       []Inventory `json:"inventory,omitempty"`
}

// WarehouseRepository defines the contract for warehouse data access.
type WarehouseRepository interface {
	List(ctx context.Context) ([]Warehouse, error)
	FindByID(ctx context.Context, id uint) (*Warehouse, error)
	FindByName(ctx context.Context, name string) (*Warehouse, error)
	Create(ctx context.Context, warehouse *Warehouse) error
	Update(ctx context.Context, warehouse *Warehouse) error
	Delete(ctx context.Context, id uint) error
}
