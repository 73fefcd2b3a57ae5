package capacity

import (
	"testing"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

func TestFullGating(t *testing.T) {
	tests := []struct {
		name    string
		current int
		max     int
		full    bool
	}{
		{"empty", 0, 100, false},
		{"almost full", 99, 100, false},
		{"exactly full", 100, 100, true},
		{"over capacity", 120, 100, true},
		{"zero max", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Utilization{Current: tt.current, Max: tt.max}
			if got := u.Full(); got != tt.full {
				t.Errorf("Full() = %v, want %v", got, tt.full)
			}
			if got := u.CanAdd(); got == tt.full {
				t.Errorf("CanAdd() = %v, want %v", got, !tt.full)
			}
		})
	}
}

func TestOfUsesReportedCapacity(t *testing.T) {
	warehouse := domain.Warehouse{
		Name:            "Central",
		MaxCapacity:     100,
		CurrentCapacity: 73,
		// Line items that disagree with the reported value must not win.
		Inventory: []domain.Inventory{{Quantity: 5}},
	}

	u := Of(warehouse)
	if u.Current != 73 || u.Max != 100 {
		t.Errorf("Of() = %+v, want {Current:73 Max:100}", u)
	}
}

func TestCurrentFromLines(t *testing.T) {
	lines := []domain.Inventory{
		{Quantity: 3},
		{Quantity: 0},
		{Quantity: 9},
	}
	if got := CurrentFromLines(lines); got != 12 {
		t.Errorf("CurrentFromLines() = %d, want 12", got)
	}
	if got := CurrentFromLines(nil); got != 0 {
		t.Errorf("CurrentFromLines(nil) = %d, want 0", got)
	}
}
