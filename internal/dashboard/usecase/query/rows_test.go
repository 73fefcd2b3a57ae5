package query

import (
	"context"
	"testing"

	"github.com/peakstock/stockdeck/internal/catalog/catalogtest"
	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

func seededStore() *catalogtest.Store {
	store := catalogtest.NewStore()
	store.Warehouses = []domain.Warehouse{
		{ID: 1, Name: "Central", MaxCapacity: 100, CurrentCapacity: 40},
		{ID: 2, Name: "East", MaxCapacity: 50, CurrentCapacity: 50},
	}
	store.Categories = []domain.Category{
		{ID: 1, Name: "Climbing"},
		{ID: 2, Name: "Camping"},
	}
	store.Products = []domain.Product{
		{ID: 10, Brand: "PeakPro", Name: "Rope", CategoryName: "Climbing"},
		{ID: 11, Brand: "TrailFox", Name: "Tent", CategoryName: "Camping"},
	}
	store.Inventories = []domain.Inventory{
		{ID: 100, ProductID: 10, WarehouseName: "Central", Size: "60m", Quantity: 4},
		{ID: 101, ProductID: 10, WarehouseName: "East", Size: "70m", Quantity: 2},
		{ID: 102, ProductID: 11, WarehouseName: "Central", Size: "2P", Quantity: 7},
	}
	return store
}

func TestListRowsFlattensAllProducts(t *testing.T) {
	store := seededStore()
	handler := NewListRowsHandler(store.ProductRepo())

	rows, err := handler.Handle(context.Background())
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Brand != "PeakPro" || rows[0].Warehouse != "Central" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if got := store.CallCount("product.List"); got != 1 {
		t.Errorf("product.List called %d times, want 1", got)
	}
}

func TestRowsByWarehouseResolvesProducts(t *testing.T) {
	store := seededStore()
	handler := NewRowsByWarehouseHandler(store.WarehouseRepo(), store.ProductRepo())

	rows, err := handler.Handle(context.Background(), RowsByWarehouseQuery{WarehouseName: "Central"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Warehouse != "Central" {
			t.Errorf("row %d scoped to %q, want Central", row.ID, row.Warehouse)
		}
	}
	// One product lookup per line.
	if got := store.CallCount("product.FindByID"); got != 2 {
		t.Errorf("product.FindByID called %d times, want 2", got)
	}
}

func TestRowsByWarehouseUnknownName(t *testing.T) {
	store := seededStore()
	handler := NewRowsByWarehouseHandler(store.WarehouseRepo(), store.ProductRepo())

	_, err := handler.Handle(context.Background(), RowsByWarehouseQuery{WarehouseName: "Nowhere"})
	if !domain.IsNotFound(err) {
		t.Errorf("Handle() error = %v, want NotFound", err)
	}

	if _, err := handler.Handle(context.Background(), RowsByWarehouseQuery{}); err == nil {
		t.Error("empty name: Handle() error = nil")
	}
}

func TestRowsByCategoryScopesToMembers(t *testing.T) {
	store := seededStore()
	handler := NewRowsByCategoryHandler(store.CategoryRepo())

	rows, err := handler.Handle(context.Background(), RowsByCategoryQuery{CategoryName: "Climbing"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Category != "Climbing" {
			t.Errorf("row %d has category %q, want Climbing", row.ID, row.Category)
		}
	}
}

func TestUtilizationHandler(t *testing.T) {
	store := seededStore()
	handler := NewUtilizationHandler(store.WarehouseRepo())

	u, err := handler.Handle(context.Background(), UtilizationQuery{WarehouseName: "East"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if u.Current != 50 || u.Max != 50 {
		t.Errorf("utilization = %+v, want {50 50}", u)
	}
	if !u.Full() {
		t.Error("Full() = false for a warehouse at capacity")
	}

	u, err = handler.Handle(context.Background(), UtilizationQuery{WarehouseName: "Central"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if u.Full() {
		t.Error("Full() = true for a warehouse with headroom")
	}
}

func TestListCatalogHandlers(t *testing.T) {
	store := seededStore()

	warehouses, err := NewListWarehousesHandler(store.WarehouseRepo()).Handle(context.Background())
	if err != nil {
		t.Fatalf("warehouses: Handle() error = %v", err)
	}
	if len(warehouses) != 2 {
		t.Errorf("len(warehouses) = %d, want 2", len(warehouses))
	}

	categories, err := NewListCategoriesHandler(store.CategoryRepo()).Handle(context.Background())
	if err != nil {
		t.Fatalf("categories: Handle() error = %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("len(categories) = %d, want 2", len(categories))
	}

	store.Fail["product.List"] = catalogtest.ServerError()
	if _, err := NewListProductsHandler(store.ProductRepo()).Handle(context.Background()); err == nil {
		t.Error("products: Handle() error = nil, want propagated failure")
	}
}
