package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers the Swagger documentation routes.
// @Summary Swagger documentation
// @Description Swagger API documentation for the dashboard service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetRows godoc
// @Summary Inventory rows for an aggregation view
// @Description Flattened inventory rows for the all, by-warehouse or by-category view, with column visibility flags
// @Tags Rows
// @Produce json
// @Param view query string false "View mode: all, warehouse or category (default all)"
// @Param warehouse query string false "Warehouse name (required for the warehouse view)"
// @Param category query string false "Category name (required for the category view)"
// @Param X-Session-ID header string false "Dashboard session ID"
// @Success 200 {object} object{success=bool,data=object{rows=array,show_category=bool,show_warehouse=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/rows [get]
func (h *DashboardHandler) GetRowsDoc() {}

// AddInventory godoc
// @Summary Add inventory
// @Description Runs the add-inventory workflow: find-or-create the product, resolve the warehouse, create the stock line, then re-fetch
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body object{brand=string,name=string,description=string,price=number,category=string,warehouse=string,size=string,quantity=int} true "Add-inventory form"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory [post]
func (h *DashboardHandler) AddInventoryDoc() {}

// UpdateInventory godoc
// @Summary Update an inventory line
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body object{warehouse=string,size=string,quantity=int} true "Edit form"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [put]
func (h *DashboardHandler) UpdateInventoryDoc() {}

// DeleteInventory godoc
// @Summary Delete an inventory line
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [delete]
func (h *DashboardHandler) DeleteInventoryDoc() {}

// GetUtilization godoc
// @Summary Warehouse utilization
// @Description Current and maximum capacity plus the add-inventory gating flag
// @Tags Warehouses
// @Produce json
// @Param name path string true "Warehouse name"
// @Success 200 {object} object{success=bool,data=object{current=int,max=int,full=bool,can_add=bool}}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/warehouses/{name}/utilization [get]
func (h *DashboardHandler) GetUtilizationDoc() {}

// GetNotice godoc
// @Summary Current transient notice
// @Description The active error notice for this session, if still inside its display window
// @Tags Notice
// @Produce json
// @Param X-Session-ID header string false "Dashboard session ID"
// @Success 200 {object} object{success=bool,data=object{presentation=string,message=string}}
// @Router /api/notice [get]
func (h *DashboardHandler) GetNoticeDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Service health including upstream catalog reachability
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *DashboardHandler) HealthCheckDoc() {}
