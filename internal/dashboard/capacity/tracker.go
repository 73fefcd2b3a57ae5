// Package capacity aggregates per-warehouse fill levels and gates the
// add-inventory action.
package capacity

import "github.com/peakstock/stockdeck/internal/catalog/domain"

// Utilization is a warehouse's current fill against its configured maximum.
type Utilization struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Of reads the utilization of a warehouse. The catalog-reported current
// capacity is authoritative; line items are not re-summed here.
func Of(warehouse domain.Warehouse) Utilization {
	return Utilization{
		Current: warehouse.CurrentCapacity,
		Max:     warehouse.MaxCapacity,
	}
}

// Full reports whether the warehouse has no room left. The add-inventory
// action is disabled (but stays visible) exactly when this is true.
func (u Utilization) Full() bool {
	return u.Current >= u.Max
}

// CanAdd is the gating rule for the add-inventory action.
func (u Utilization) CanAdd() bool {
	return !u.Full()
}

// CurrentFromLines sums line quantities. It exists as a consistency probe
// against the catalog-reported value, not as a gating source.
func CurrentFromLines(lines []domain.Inventory) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}
