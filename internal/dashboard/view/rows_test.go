package view

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

func TestBuildRowsFlattensEveryLine(t *testing.T) {
	products := []domain.Product{
		{
			ID: 1, Brand: "PeakPro", Name: "Rope", Description: "60m dynamic",
			Price: decimal.NewFromInt(120), CategoryName: "Climbing",
			Inventory: []domain.Inventory{
				{ID: 10, ProductID: 1, WarehouseName: "Central", Size: "60m", Quantity: 4},
				{ID: 11, ProductID: 1, WarehouseName: "East", Size: "70m", Quantity: 2},
			},
		},
		{
			ID: 2, Brand: "TrailFox", Name: "Tent", Price: decimal.NewFromInt(300),
			CategoryName: "Camping",
			Inventory: []domain.Inventory{
				{ID: 12, ProductID: 2, WarehouseName: "Central", Size: "2P", Quantity: 7},
			},
		},
	}

	rows := BuildRows(products)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	wantIDs := []uint{10, 11, 12}
	for i, want := range wantIDs {
		if rows[i].ID != want {
			t.Errorf("rows[%d].ID = %d, want %d", i, rows[i].ID, want)
		}
	}

	first := rows[0]
	if first.Brand != "PeakPro" || first.Name != "Rope" || first.Category != "Climbing" {
		t.Errorf("product fields not copied into row: %+v", first)
	}
	if first.Warehouse != "Central" || first.Size != "60m" || first.Quantity != 4 {
		t.Errorf("line fields not copied into row: %+v", first)
	}
	if !first.Price.Equal(decimal.NewFromInt(120)) {
		t.Errorf("rows[0].Price = %s, want 120", first.Price)
	}
}

func TestBuildRowsSkipsProductsWithoutLines(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Brand: "PeakPro", Name: "Rope"},
		{ID: 2, Brand: "TrailFox", Name: "Tent", Inventory: []domain.Inventory{
			{ID: 20, ProductID: 2, Quantity: 1},
		}},
	}

	rows := BuildRows(products)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].ID != 20 {
		t.Errorf("rows[0].ID = %d, want 20", rows[0].ID)
	}
}

func TestBuildRowsDefaultsEmptySize(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Brand: "PeakPro", Name: "Stove", Inventory: []domain.Inventory{
			{ID: 30, ProductID: 1, Size: "", Quantity: 5},
			{ID: 31, ProductID: 1, Size: "L", Quantity: 2},
		}},
	}

	rows := BuildRows(products)
	if rows[0].Size != SizeNA {
		t.Errorf("rows[0].Size = %q, want %q", rows[0].Size, SizeNA)
	}
	if rows[1].Size != "L" {
		t.Errorf("rows[1].Size = %q, want L", rows[1].Size)
	}
}

func TestBuildRowsForWarehouseResolvesEachLine(t *testing.T) {
	warehouse := domain.Warehouse{
		Name: "Central",
		Inventory: []domain.Inventory{
			{ID: 1, ProductID: 100, Size: "60m", Quantity: 3},
			{ID: 2, ProductID: 200, Quantity: 1},
		},
	}

	var resolved []uint
	resolve := func(_ context.Context, id uint) (*domain.Product, error) {
		resolved = append(resolved, id)
		return &domain.Product{ID: id, Brand: "B", Name: fmt.Sprintf("P%d", id), CategoryName: "C"}, nil
	}

	rows, err := BuildRowsForWarehouse(context.Background(), warehouse, resolve)
	if err != nil {
		t.Fatalf("BuildRowsForWarehouse() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if len(resolved) != 2 || resolved[0] != 100 || resolved[1] != 200 {
		t.Errorf("resolved = %v, want [100 200]", resolved)
	}
	// Lines in the by-warehouse payload omit the warehouse name; the row
	// falls back to the owning warehouse.
	if rows[0].Warehouse != "Central" {
		t.Errorf("rows[0].Warehouse = %q, want Central", rows[0].Warehouse)
	}
	if rows[1].Size != SizeNA {
		t.Errorf("rows[1].Size = %q, want %q", rows[1].Size, SizeNA)
	}
}

func TestBuildRowsForWarehousePropagatesResolverFailure(t *testing.T) {
	warehouse := domain.Warehouse{
		Name: "Central",
		Inventory: []domain.Inventory{
			{ID: 1, ProductID: 100},
		},
	}
	wantErr := &domain.RequestError{StatusCode: 500, Message: "boom"}
	resolve := func(_ context.Context, _ uint) (*domain.Product, error) {
		return nil, wantErr
	}

	_, err := BuildRowsForWarehouse(context.Background(), warehouse, resolve)
	if err == nil {
		t.Fatal("BuildRowsForWarehouse() error = nil, want failure")
	}
	if domain.ClassOf(err) != domain.FailureServer {
		t.Errorf("ClassOf() = %q, want server failure to survive wrapping", domain.ClassOf(err))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAll, false},
		{"all", ModeAll, false},
		{"warehouse", ModeByWarehouse, false},
		{"category", ModeByCategory, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScopedModesHideTheirColumn(t *testing.T) {
	if !ModeAll.ShowCategory() || !ModeAll.ShowWarehouse() {
		t.Error("all view must show both columns")
	}
	if ModeByCategory.ShowCategory() {
		t.Error("category view must hide the category column")
	}
	if !ModeByCategory.ShowWarehouse() {
		t.Error("category view must show the warehouse column")
	}
	if ModeByWarehouse.ShowWarehouse() {
		t.Error("warehouse view must hide the warehouse column")
	}
	if !ModeByWarehouse.ShowCategory() {
		t.Error("warehouse view must show the category column")
	}
}
