// Package catalogtest provides an in-memory catalog standing in for the
// upstream service in tests, with per-operation call counting and failure
// injection.
package catalogtest

import (
	"context"
	"net/http"
	"sync"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// Store holds the fake catalog state. Products and warehouses are stored
// without embedded lines; reads join them from Inventories the way the real
// service denormalizes its payloads.
type Store struct {
	mu sync.Mutex

	Warehouses  []domain.Warehouse
	Categories  []domain.Category
	Products    []domain.Product
	Inventories []domain.Inventory

	// Calls counts operations by name, e.g. "product.FindByBrandAndName".
	Calls map[string]int
	// Fail forces the named operation to return the given error.
	Fail map[string]error

	nextID uint
}

// NewStore creates an empty fake catalog.
func NewStore() *Store {
	return &Store{
		Calls:  make(map[string]int),
		Fail:   make(map[string]error),
		nextID: 1000,
	}
}

// NotFound builds the 404-class failure the real client returns.
func NotFound(resource string) *domain.RequestError {
	return &domain.RequestError{StatusCode: http.StatusNotFound, Message: resource + " not found"}
}

// ServerError builds a 500-class failure.
func ServerError() *domain.RequestError {
	return &domain.RequestError{StatusCode: http.StatusInternalServerError, Message: "internal error"}
}

// CallCount reports how often an operation ran.
func (s *Store) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls[op]
}

// record must be called with the lock held.
func (s *Store) record(op string) error {
	s.Calls[op]++
	if err, ok := s.Fail[op]; ok {
		return err
	}
	return nil
}

func (s *Store) allocID() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) linesForProduct(id uint) []domain.Inventory {
	var lines []domain.Inventory
	for _, line := range s.Inventories {
		if line.ProductID == id {
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *Store) linesForWarehouse(name string) []domain.Inventory {
	var lines []domain.Inventory
	for _, line := range s.Inventories {
		if line.WarehouseName == name {
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *Store) productsForCategory(name string) []domain.Product {
	var products []domain.Product
	for _, product := range s.Products {
		if product.CategoryName == name {
			product.Inventory = s.linesForProduct(product.ID)
			products = append(products, product)
		}
	}
	return products
}

// WarehouseRepo returns the store's warehouse repository.
func (s *Store) WarehouseRepo() domain.WarehouseRepository { return warehouseRepo{s} }

// CategoryRepo returns the store's category repository.
func (s *Store) CategoryRepo() domain.CategoryRepository { return categoryRepo{s} }

// ProductRepo returns the store's product repository.
func (s *Store) ProductRepo() domain.ProductRepository { return productRepo{s} }

// InventoryRepo returns the store's inventory repository.
func (s *Store) InventoryRepo() domain.InventoryRepository { return inventoryRepo{s} }

type warehouseRepo struct{ s *Store }

func (r warehouseRepo) List(_ context.Context) ([]domain.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.List"); err != nil {
		return nil, err
	}
	warehouses := make([]domain.Warehouse, len(r.s.Warehouses))
	for i, warehouse := range r.s.Warehouses {
		warehouse.Inventory = r.s.linesForWarehouse(warehouse.Name)
		warehouses[i] = warehouse
	}
	return warehouses, nil
}

func (r warehouseRepo) FindByID(_ context.Context, id uint) (*domain.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.FindByID"); err != nil {
		return nil, err
	}
	for _, warehouse := range r.s.Warehouses {
		if warehouse.ID == id {
			warehouse.Inventory = r.s.linesForWarehouse(warehouse.Name)
			return &warehouse, nil
		}
	}
	return nil, NotFound("warehouse")
}

func (r warehouseRepo) FindByName(_ context.Context, name string) (*domain.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.FindByName"); err != nil {
		return nil, err
	}
	for _, warehouse := range r.s.Warehouses {
		if warehouse.Name == name {
			warehouse.Inventory = r.s.linesForWarehouse(warehouse.Name)
			return &warehouse, nil
		}
	}
	return nil, NotFound("warehouse")
}

func (r warehouseRepo) Create(_ context.Context, warehouse *domain.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.Create"); err != nil {
		return err
	}
	warehouse.ID = r.s.allocID()
	r.s.Warehouses = append(r.s.Warehouses, *warehouse)
	return nil
}

func (r warehouseRepo) Update(_ context.Context, warehouse *domain.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.Update"); err != nil {
		return err
	}
	for i := range r.s.Warehouses {
		if r.s.Warehouses[i].ID == warehouse.ID {
			r.s.Warehouses[i] = *warehouse
			return nil
		}
	}
	return NotFound("warehouse")
}

func (r warehouseRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("warehouse.Delete"); err != nil {
		return err
	}
	for i := range r.s.Warehouses {
		if r.s.Warehouses[i].ID == id {
			r.s.Warehouses = append(r.s.Warehouses[:i], r.s.Warehouses[i+1:]...)
			return nil
		}
	}
	return NotFound("warehouse")
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.List"); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(r.s.Categories))
	for i, category := range r.s.Categories {
		category.Products = r.s.productsForCategory(category.Name)
		categories[i] = category
	}
	return categories, nil
}

func (r categoryRepo) FindByID(_ context.Context, id uint) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.FindByID"); err != nil {
		return nil, err
	}
	for _, category := range r.s.Categories {
		if category.ID == id {
			category.Products = r.s.productsForCategory(category.Name)
			return &category, nil
		}
	}
	return nil, NotFound("category")
}

func (r categoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.FindByName"); err != nil {
		return nil, err
	}
	for _, category := range r.s.Categories {
		if category.Name == name {
			category.Products = r.s.productsForCategory(category.Name)
			return &category, nil
		}
	}
	return nil, NotFound("category")
}

func (r categoryRepo) Create(_ context.Context, category *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.Create"); err != nil {
		return err
	}
	category.ID = r.s.allocID()
	r.s.Categories = append(r.s.Categories, *category)
	return nil
}

func (r categoryRepo) Update(_ context.Context, category *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.Update"); err != nil {
		return err
	}
	for i := range r.s.Categories {
		if r.s.Categories[i].ID == category.ID {
			r.s.Categories[i] = *category
			return nil
		}
	}
	return NotFound("category")
}

func (r categoryRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("category.Delete"); err != nil {
		return err
	}
	for i := range r.s.Categories {
		if r.s.Categories[i].ID == id {
			r.s.Categories = append(r.s.Categories[:i], r.s.Categories[i+1:]...)
			return nil
		}
	}
	return NotFound("category")
}

type productRepo struct{ s *Store }

func (r productRepo) List(_ context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.List"); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(r.s.Products))
	for i, product := range r.s.Products {
		product.Inventory = r.s.linesForProduct(product.ID)
		products[i] = product
	}
	return products, nil
}

func (r productRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.FindByID"); err != nil {
		return nil, err
	}
	for _, product := range r.s.Products {
		if product.ID == id {
			return &product, nil
		}
	}
	return nil, NotFound("product")
}

func (r productRepo) FindByBrandAndName(_ context.Context, brand, name string) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.FindByBrandAndName"); err != nil {
		return nil, err
	}
	for _, product := range r.s.Products {
		if product.Brand == brand && product.Name == name {
			return &product, nil
		}
	}
	return nil, NotFound("product")
}

func (r productRepo) Create(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.Create"); err != nil {
		return err
	}
	product.ID = r.s.allocID()
	r.s.Products = append(r.s.Products, *product)
	return nil
}

func (r productRepo) Update(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.Update"); err != nil {
		return err
	}
	for i := range r.s.Products {
		if r.s.Products[i].ID == product.ID {
			r.s.Products[i] = *product
			return nil
		}
	}
	return NotFound("product")
}

func (r productRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("product.Delete"); err != nil {
		return err
	}
	for i := range r.s.Products {
		if r.s.Products[i].ID == id {
			r.s.Products = append(r.s.Products[:i], r.s.Products[i+1:]...)
			return nil
		}
	}
	return NotFound("product")
}

type inventoryRepo struct{ s *Store }

func (r inventoryRepo) List(_ context.Context) ([]domain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("inventory.List"); err != nil {
		return nil, err
	}
	lines := make([]domain.Inventory, len(r.s.Inventories))
	copy(lines, r.s.Inventories)
	return lines, nil
}

func (r inventoryRepo) FindByID(_ context.Context, id uint) (*domain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("inventory.FindByID"); err != nil {
		return nil, err
	}
	for _, line := range r.s.Inventories {
		if line.ID == id {
			return &line, nil
		}
	}
	return nil, NotFound("inventory")
}

func (r inventoryRepo) Create(_ context.Context, inventory *domain.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("inventory.Create"); err != nil {
		return err
	}
	inventory.ID = r.s.allocID()
	r.s.Inventories = append(r.s.Inventories, *inventory)
	return nil
}

func (r inventoryRepo) Update(_ context.Context, inventory *domain.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("inventory.Update"); err != nil {
		return err
	}
	for i := range r.s.Inventories {
		if r.s.Inventories[i].ID == inventory.ID {
			r.s.Inventories[i] = *inventory
			return nil
		}
	}
	return NotFound("inventory")
}

func (r inventoryRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("inventory.Delete"); err != nil {
		return err
	}
	for i := range r.s.Inventories {
		if r.s.Inventories[i].ID == id {
			r.s.Inventories = append(r.s.Inventories[:i], r.s.Inventories[i+1:]...)
			return nil
		}
	}
	return NotFound("inventory")
}
