// Package page models one mounted dashboard view: it owns the fetched
// collections, runs the strictly sequential fetch workflow, and re-fetches
// after every successful mutation so the table always reflects upstream
// state.
package page

import (
	"context"
	"sync"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/capacity"
	"github.com/peakstock/stockdeck/internal/dashboard/notice"
	"github.com/peakstock/stockdeck/internal/dashboard/usecase/command"
	"github.com/peakstock/stockdeck/internal/dashboard/usecase/query"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
)

// Deps are the four resource repositories a page works against.
type Deps struct {
	Warehouses  domain.WarehouseRepository
	Categories  domain.CategoryRepository
	Products    domain.ProductRepository
	Inventories domain.InventoryRepository
}

// Page is the state of one mounted inventory view. A page is created on
// mount, re-parameterized on navigation, and discarded when its session
// goes idle. The page is the sole owner of its collections.
type Page struct {
	mu sync.Mutex

	mode          view.Mode
	warehouseName string
	categoryName  string
	loaded        bool

	rows       []view.InventoryRow
	warehouses []domain.Warehouse

	notices *notice.Center

	listRows        *query.ListRowsHandler
	rowsByWarehouse *query.RowsByWarehouseHandler
	rowsByCategory  *query.RowsByCategoryHandler
	listWarehouses  *query.ListWarehousesHandler

	addInventory    *command.AddInventoryHandler
	updateInventory *command.UpdateInventoryHandler
	deleteInventory *command.DeleteInventoryHandler
}

// New creates an unmounted page.
func New(deps Deps) *Page {
	return &Page{
		mode:            view.ModeAll,
		notices:         notice.NewCenter(),
		listRows:        query.NewListRowsHandler(deps.Products),
		rowsByWarehouse: query.NewRowsByWarehouseHandler(deps.Warehouses, deps.Products),
		rowsByCategory:  query.NewRowsByCategoryHandler(deps.Categories),
		listWarehouses:  query.NewListWarehousesHandler(deps.Warehouses),
		addInventory:    command.NewAddInventoryHandler(deps.Products, deps.Categories, deps.Warehouses, deps.Inventories),
		updateInventory: command.NewUpdateInventoryHandler(deps.Inventories, deps.Warehouses),
		deleteInventory: command.NewDeleteInventoryHandler(deps.Inventories),
	}
}

// Load mounts the page on an aggregation view and fetches its collections.
// Fetches run strictly sequentially; a failure publishes a notice and leaves
// the previous collections in place.
func (p *Page) Load(ctx context.Context, mode view.Mode, warehouseName, categoryName string) ([]view.InventoryRow, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = mode
	p.warehouseName = warehouseName
	p.categoryName = categoryName

	if err := p.fetchLocked(ctx); err != nil {
		p.notices.Publish(err)
		return nil, err
	}
	p.loaded = true
	return p.rowsLocked(), nil
}

// Refresh re-runs the last Load against the upstream.
func (p *Page) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetchLocked(ctx)
}

// fetchLocked runs the sequential fetch workflow: the warehouse collection
// first (capacity gating needs it on every view), then the rows for the
// current aggregation.
func (p *Page) fetchLocked(ctx context.Context) error {
	warehouses, err := p.listWarehouses.Handle(ctx)
	if err != nil {
		return err
	}

	var rows []view.InventoryRow
	switch p.mode {
	case view.ModeByWarehouse:
		rows, err = p.rowsByWarehouse.Handle(ctx, query.RowsByWarehouseQuery{WarehouseName: p.warehouseName})
	case view.ModeByCategory:
		rows, err = p.rowsByCategory.Handle(ctx, query.RowsByCategoryQuery{CategoryName: p.categoryName})
	default:
		rows, err = p.listRows.Handle(ctx)
	}
	if err != nil {
		return err
	}

	p.warehouses = warehouses
	p.rows = rows
	return nil
}

// AddInventory runs the find-or-create workflow, then re-fetches. A failed
// re-fetch after a committed mutation surfaces as a notice, not as a
// workflow failure.
func (p *Page) AddInventory(ctx context.Context, cmd command.AddInventoryCommand) error {
	if _, err := p.addInventory.Handle(ctx, cmd); err != nil {
		p.notices.Publish(err)
		return err
	}
	p.refreshAfterMutation(ctx)
	return nil
}

// UpdateInventory edits one line, then re-fetches.
func (p *Page) UpdateInventory(ctx context.Context, cmd command.UpdateInventoryCommand) error {
	if _, err := p.updateInventory.Handle(ctx, cmd); err != nil {
		p.notices.Publish(err)
		return err
	}
	p.refreshAfterMutation(ctx)
	return nil
}

// DeleteInventory removes one line, then re-fetches. The row is pruned
// locally first: the delete is already committed upstream, so a failed
// re-fetch must not resurrect it.
func (p *Page) DeleteInventory(ctx context.Context, id uint) error {
	if err := p.deleteInventory.Handle(ctx, command.DeleteInventoryCommand{ID: id}); err != nil {
		p.notices.Publish(err)
		return err
	}

	p.mu.Lock()
	kept := p.rows[:0]
	for _, row := range p.rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	p.rows = kept
	p.mu.Unlock()

	p.refreshAfterMutation(ctx)
	return nil
}

func (p *Page) refreshAfterMutation(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		p.notices.Publish(err)
	}
}

// Rows returns a copy of the current projection.
func (p *Page) Rows() []view.InventoryRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rowsLocked()
}

func (p *Page) rowsLocked() []view.InventoryRow {
	rows := make([]view.InventoryRow, len(p.rows))
	copy(rows, p.rows)
	return rows
}

// Mode returns the page's current aggregation view.
func (p *Page) Mode() view.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Utilization reads the cached utilization for a warehouse. The second
// return is false when the warehouse is not in the fetched collection.
func (p *Page) Utilization(warehouseName string) (capacity.Utilization, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, warehouse := range p.warehouses {
		if warehouse.Name == warehouseName {
			return capacity.Of(warehouse), true
		}
	}
	return capacity.Utilization{}, false
}

// Notice returns the page's active notice, if one is still visible.
func (p *Page) Notice() (notice.Notice, bool) {
	return p.notices.Current()
}
