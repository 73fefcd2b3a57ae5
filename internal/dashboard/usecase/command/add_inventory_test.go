package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/catalogtest"
	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
)

func newAddHandler(store *catalogtest.Store) *AddInventoryHandler {
	return NewAddInventoryHandler(
		store.ProductRepo(),
		store.CategoryRepo(),
		store.WarehouseRepo(),
		store.InventoryRepo(),
	)
}

func seededStore() *catalogtest.Store {
	store := catalogtest.NewStore()
	store.Categories = []domain.Category{{ID: 1, Name: "Climbing"}}
	store.Warehouses = []domain.Warehouse{{ID: 1, Name: "Central", MaxCapacity: 100, CurrentCapacity: 10}}
	return store
}

func TestAddInventoryCreatesMissingProduct(t *testing.T) {
	store := seededStore()
	handler := newAddHandler(store)

	line, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand:         "PeakPro",
		Name:          "Rope",
		Description:   "60m dynamic",
		Price:         decimal.NewFromInt(120),
		CategoryName:  "Climbing",
		WarehouseName: "Central",
		Size:          "60m",
		Quantity:      4,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	// Exactly one lookup, one category resolve, one create, one warehouse
	// resolve, one line create.
	for op, want := range map[string]int{
		"product.FindByBrandAndName": 1,
		"category.FindByName":        1,
		"product.Create":             1,
		"warehouse.FindByName":       1,
		"inventory.Create":           1,
	} {
		if got := store.CallCount(op); got != want {
			t.Errorf("CallCount(%q) = %d, want %d", op, got, want)
		}
	}

	if len(store.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(store.Products))
	}
	if store.Products[0].CategoryName != "Climbing" {
		t.Errorf("product category = %q, want Climbing", store.Products[0].CategoryName)
	}
	if line.ProductID != store.Products[0].ID {
		t.Errorf("line.ProductID = %d, want %d", line.ProductID, store.Products[0].ID)
	}
	if line.WarehouseName != "Central" || line.Size != "60m" || line.Quantity != 4 {
		t.Errorf("unexpected line: %+v", line)
	}
}

func TestAddInventoryReusesExistingProduct(t *testing.T) {
	store := seededStore()
	store.Products = []domain.Product{{
		ID: 7, Brand: "PeakPro", Name: "Rope",
		Description: "old description", Price: decimal.NewFromInt(99),
		CategoryName: "Climbing",
	}}
	handler := newAddHandler(store)

	line, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand: "PeakPro", Name: "Rope",
		Description: "new description", Price: decimal.NewFromInt(150),
		CategoryName: "Climbing", WarehouseName: "Central", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if got := store.CallCount("product.Create"); got != 0 {
		t.Errorf("product.Create called %d times for an existing product", got)
	}
	if got := store.CallCount("category.FindByName"); got != 0 {
		t.Errorf("category resolved %d times when reusing a product", got)
	}
	if line.ProductID != 7 {
		t.Errorf("line.ProductID = %d, want the existing product 7", line.ProductID)
	}
	// The existing product stays as-is; a matching (brand, name) is identity.
	if store.Products[0].Description != "old description" {
		t.Errorf("existing product was modified: %+v", store.Products[0])
	}
}

func TestAddInventoryDefaultsSize(t *testing.T) {
	store := seededStore()
	handler := newAddHandler(store)

	line, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand: "PeakPro", Name: "Stove",
		CategoryName: "Climbing", WarehouseName: "Central", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if line.Size != view.SizeNA {
		t.Errorf("line.Size = %q, want %q", line.Size, view.SizeNA)
	}
}

func TestAddInventoryStopsWhenWarehouseMissing(t *testing.T) {
	store := seededStore()
	handler := newAddHandler(store)

	_, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand: "PeakPro", Name: "Rope",
		CategoryName: "Climbing", WarehouseName: "Nowhere", Quantity: 1,
	})
	if err == nil {
		t.Fatal("Handle() error = nil, want warehouse failure")
	}
	if !domain.IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}

	// The product created before the failing step stays; there is no rollback.
	if len(store.Products) != 1 {
		t.Errorf("len(Products) = %d, want the orphaned product kept", len(store.Products))
	}
	if got := store.CallCount("inventory.Create"); got != 0 {
		t.Errorf("inventory.Create called %d times after a failed warehouse resolve", got)
	}
}

func TestAddInventoryStopsWhenCategoryMissing(t *testing.T) {
	store := seededStore()
	handler := newAddHandler(store)

	_, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand: "PeakPro", Name: "Rope",
		CategoryName: "Bogus", WarehouseName: "Central", Quantity: 1,
	})
	if err == nil {
		t.Fatal("Handle() error = nil, want category failure")
	}
	if len(store.Products) != 0 {
		t.Errorf("product created despite the category resolve failing first")
	}
	if got := store.CallCount("warehouse.FindByName"); got != 0 {
		t.Errorf("warehouse resolved %d times after an earlier failure", got)
	}
}

func TestAddInventoryDistinguishesLookupFailureFromNotFound(t *testing.T) {
	store := seededStore()
	store.Fail["product.FindByBrandAndName"] = catalogtest.ServerError()
	handler := newAddHandler(store)

	_, err := handler.Handle(context.Background(), AddInventoryCommand{
		Brand: "PeakPro", Name: "Rope",
		CategoryName: "Climbing", WarehouseName: "Central", Quantity: 1,
	})
	if err == nil {
		t.Fatal("Handle() error = nil, want lookup failure")
	}
	// A 500 on lookup must not be treated as "create it".
	if got := store.CallCount("product.Create"); got != 0 {
		t.Errorf("product.Create called %d times after a server-class lookup failure", got)
	}
	if domain.ClassOf(err) != domain.FailureServer {
		t.Errorf("ClassOf() = %q, want server failure", domain.ClassOf(err))
	}
}

func TestAddInventoryValidation(t *testing.T) {
	store := seededStore()
	handler := newAddHandler(store)

	tests := []struct {
		name string
		cmd  AddInventoryCommand
	}{
		{"missing brand", AddInventoryCommand{Name: "Rope", WarehouseName: "Central"}},
		{"missing name", AddInventoryCommand{Brand: "PeakPro", WarehouseName: "Central"}},
		{"missing warehouse", AddInventoryCommand{Brand: "PeakPro", Name: "Rope"}},
		{"negative quantity", AddInventoryCommand{Brand: "PeakPro", Name: "Rope", WarehouseName: "Central", Quantity: -1}},
		{"negative price", AddInventoryCommand{Brand: "PeakPro", Name: "Rope", WarehouseName: "Central", Price: decimal.NewFromInt(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := handler.Handle(context.Background(), tt.cmd); err == nil {
				t.Error("Handle() error = nil, want validation failure")
			}
		})
	}
	if got := store.CallCount("product.FindByBrandAndName"); got != 0 {
		t.Errorf("lookup ran %d times on invalid commands", got)
	}
}
