// Package dashboard wires the catalog clients into the delivery layer.
package dashboard

import (
	"github.com/google/wire"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/catalog/rest"
	"github.com/peakstock/stockdeck/internal/dashboard/page"
)

// ProvideWarehouseRepository provides the warehouse resource client.
func ProvideWarehouseRepository(api *rest.Client) domain.WarehouseRepository {
	return rest.NewWarehouseClient(api)
}

// ProvideCategoryRepository provides the category resource client.
func ProvideCategoryRepository(api *rest.Client) domain.CategoryRepository {
	return rest.NewCategoryClient(api)
}

// ProvideProductRepository provides the product resource client.
func ProvideProductRepository(api *rest.Client) domain.ProductRepository {
	return rest.NewProductClient(api)
}

// ProvideInventoryRepository provides the inventory resource client.
func ProvideInventoryRepository(api *rest.Client) domain.InventoryRepository {
	return rest.NewInventoryClient(api)
}

// ProvidePageDeps bundles the four repositories for the page layer.
func ProvidePageDeps(
	warehouses domain.WarehouseRepository,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	inventories domain.InventoryRepository,
) page.Deps {
	return page.Deps{
		Warehouses:  warehouses,
		Categories:  categories,
		Products:    products,
		Inventories: inventories,
	}
}

// RepositorySet groups the resource-client providers.
var RepositorySet = wire.NewSet(
	ProvideWarehouseRepository,
	ProvideCategoryRepository,
	ProvideProductRepository,
	ProvideInventoryRepository,
	ProvidePageDeps,
)
