package view

import "fmt"

// Mode selects which aggregation of the inventory data a page shows.
type Mode string

const (
	ModeAll         Mode = "all"
	ModeByWarehouse Mode = "warehouse"
	ModeByCategory  Mode = "category"
)

// ParseMode validates a view-mode query parameter. An empty value defaults
// to the all view.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAll, nil
	case ModeAll, ModeByWarehouse, ModeByCategory:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// ShowCategory reports whether the category column is displayed. It is
// hidden when the page is already scoped to one category.
func (m Mode) ShowCategory() bool {
	return m != ModeByCategory
}

// ShowWarehouse reports whether the warehouse column is displayed. It is
// hidden when the page is already scoped to one warehouse.
func (m Mode) ShowWarehouse() bool {
	return m != ModeByWarehouse
}
