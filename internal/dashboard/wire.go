//go:build wireinject
// +build wireinject

package dashboard

import (
	"time"

	"github.com/google/wire"

	"github.com/peakstock/stockdeck/internal/catalog/rest"
	httpDelivery "github.com/peakstock/stockdeck/internal/dashboard/delivery/http"
)

// InitializeDashboardHandler builds the HTTP handler with all dependencies.
func InitializeDashboardHandler(api *rest.Client, sessionTTL time.Duration) (*httpDelivery.DashboardHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewDashboardHandler,
	)
	return nil, nil
}
