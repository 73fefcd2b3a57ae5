package command

import (
	"context"
	"testing"

	"github.com/peakstock/stockdeck/internal/catalog/catalogtest"
	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

func TestUpdateInventoryEditsSizeAndQuantity(t *testing.T) {
	store := catalogtest.NewStore()
	store.Warehouses = []domain.Warehouse{{ID: 1, Name: "Central"}}
	store.Inventories = []domain.Inventory{
		{ID: 5, ProductID: 1, WarehouseName: "Central", Size: "M", Quantity: 3},
	}
	handler := NewUpdateInventoryHandler(store.InventoryRepo(), store.WarehouseRepo())

	line, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		ID: 5, Size: "L", Quantity: 8,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if line.Size != "L" || line.Quantity != 8 {
		t.Errorf("unexpected line: %+v", line)
	}
	// Unchanged warehouse is not re-resolved.
	if got := store.CallCount("warehouse.FindByName"); got != 0 {
		t.Errorf("warehouse.FindByName called %d times without a move", got)
	}
	if store.Inventories[0].Size != "L" {
		t.Errorf("stored line not updated: %+v", store.Inventories[0])
	}
}

func TestUpdateInventoryResolvesNewWarehouse(t *testing.T) {
	store := catalogtest.NewStore()
	store.Warehouses = []domain.Warehouse{{ID: 1, Name: "Central"}, {ID: 2, Name: "East"}}
	store.Inventories = []domain.Inventory{
		{ID: 5, ProductID: 1, WarehouseName: "Central", Size: "M", Quantity: 3},
	}
	handler := NewUpdateInventoryHandler(store.InventoryRepo(), store.WarehouseRepo())

	line, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		ID: 5, WarehouseName: "East", Quantity: 3,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if line.WarehouseName != "East" {
		t.Errorf("line.WarehouseName = %q, want East", line.WarehouseName)
	}
	if got := store.CallCount("warehouse.FindByName"); got != 1 {
		t.Errorf("warehouse.FindByName called %d times, want 1", got)
	}
}

func TestUpdateInventoryRejectsUnknownWarehouse(t *testing.T) {
	store := catalogtest.NewStore()
	store.Inventories = []domain.Inventory{
		{ID: 5, ProductID: 1, WarehouseName: "Central", Quantity: 3},
	}
	handler := NewUpdateInventoryHandler(store.InventoryRepo(), store.WarehouseRepo())

	_, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		ID: 5, WarehouseName: "Nowhere", Quantity: 3,
	})
	if !domain.IsNotFound(err) {
		t.Errorf("Handle() error = %v, want NotFound", err)
	}
	if got := store.CallCount("inventory.Update"); got != 0 {
		t.Errorf("inventory.Update called %d times after a failed resolve", got)
	}
}

func TestUpdateInventoryRequiresID(t *testing.T) {
	store := catalogtest.NewStore()
	handler := NewUpdateInventoryHandler(store.InventoryRepo(), store.WarehouseRepo())

	if _, err := handler.Handle(context.Background(), UpdateInventoryCommand{Quantity: 1}); err == nil {
		t.Error("Handle() error = nil, want missing-id failure")
	}
}

func TestDeleteInventory(t *testing.T) {
	store := catalogtest.NewStore()
	store.Inventories = []domain.Inventory{{ID: 5}, {ID: 6}}
	handler := NewDeleteInventoryHandler(store.InventoryRepo())

	if err := handler.Handle(context.Background(), DeleteInventoryCommand{ID: 5}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(store.Inventories) != 1 || store.Inventories[0].ID != 6 {
		t.Errorf("Inventories = %+v, want only line 6", store.Inventories)
	}

	err := handler.Handle(context.Background(), DeleteInventoryCommand{ID: 999})
	if !domain.IsNotFound(err) {
		t.Errorf("deleting a missing line: error = %v, want NotFound", err)
	}

	if err := handler.Handle(context.Background(), DeleteInventoryCommand{}); err == nil {
		t.Error("Handle() error = nil, want missing-id failure")
	}
}
