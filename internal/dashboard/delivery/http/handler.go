package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/internal/dashboard/page"
	"github.com/peakstock/stockdeck/internal/dashboard/usecase/command"
	"github.com/peakstock/stockdeck/internal/dashboard/usecase/query"
	"github.com/peakstock/stockdeck/internal/dashboard/view"
	"github.com/peakstock/stockdeck/pkg/logger"
)

// SessionHeader carries the dashboard session ID between UI and service.
const SessionHeader = "X-Session-ID"

// DashboardHandler serves the UI shell's HTTP API.
type DashboardHandler struct {
	pages      *page.Manager
	warehouses domain.WarehouseRepository

	// Command handlers
	saveWarehouse   *command.SaveWarehouseHandler
	deleteWarehouse *command.DeleteWarehouseHandler
	saveCategory    *command.SaveCategoryHandler
	deleteCategory  *command.DeleteCategoryHandler
	updateProduct   *command.UpdateProductHandler
	deleteProduct   *command.DeleteProductHandler

	// Query handlers
	listWarehouses *query.ListWarehousesHandler
	listCategories *query.ListCategoriesHandler
	listProducts   *query.ListProductsHandler
	utilization    *query.UtilizationHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	activeSessions prometheus.Gauge
}

// NewDashboardHandler creates the handler and registers its metrics.
func NewDashboardHandler(deps page.Deps, sessionTTL time.Duration) *DashboardHandler {
	pages := page.NewManager(sessionTTL, func() *page.Page {
		return page.New(deps)
	})

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of requests to the dashboard service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Duration of dashboard requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	activeSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Number of live dashboard page sessions",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(activeSessions)

	return &DashboardHandler{
		pages:           pages,
		warehouses:      deps.Warehouses,
		saveWarehouse:   command.NewSaveWarehouseHandler(deps.Warehouses),
		deleteWarehouse: command.NewDeleteWarehouseHandler(deps.Warehouses),
		saveCategory:    command.NewSaveCategoryHandler(deps.Categories),
		deleteCategory:  command.NewDeleteCategoryHandler(deps.Categories),
		updateProduct:   command.NewUpdateProductHandler(deps.Products, deps.Categories),
		deleteProduct:   command.NewDeleteProductHandler(deps.Products),
		listWarehouses:  query.NewListWarehousesHandler(deps.Warehouses),
		listCategories:  query.NewListCategoriesHandler(deps.Categories),
		listProducts:    query.NewListProductsHandler(deps.Products),
		utilization:     query.NewUtilizationHandler(deps.Warehouses),
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		activeSessions:  activeSessions,
	}
}

// Pages exposes the session manager for the idle-sweep loop in main.
func (h *DashboardHandler) Pages() *page.Manager {
	return h.pages
}

// Response is the standard JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all dashboard routes.
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/rows", h.instrument("rows", h.GetRows)).Methods("GET")
	router.HandleFunc("/api/notice", h.instrument("notice", h.GetNotice)).Methods("GET")

	router.HandleFunc("/api/warehouses", h.instrument("warehouses", h.ListWarehouses)).Methods("GET")
	router.HandleFunc("/api/warehouses/{name}/utilization", h.instrument("utilization", h.GetUtilization)).Methods("GET")
	router.HandleFunc("/api/categories", h.instrument("categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/products", h.instrument("products", h.ListProducts)).Methods("GET")
}

// RegisterMutationRoutes registers the write endpoints, optionally wrapped by
// a rate limiter.
func (h *DashboardHandler) RegisterMutationRoutes(router *mux.Router, limit func(http.HandlerFunc) http.HandlerFunc) {
	if limit == nil {
		limit = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	router.HandleFunc("/api/inventory", limit(h.instrument("inventory_add", h.AddInventory))).Methods("POST")
	router.HandleFunc("/api/inventory/{id}", limit(h.instrument("inventory_update", h.UpdateInventory))).Methods("PUT")
	router.HandleFunc("/api/inventory/{id}", limit(h.instrument("inventory_delete", h.DeleteInventory))).Methods("DELETE")

	router.HandleFunc("/api/warehouses", limit(h.instrument("warehouse_create", h.SaveWarehouse))).Methods("POST")
	router.HandleFunc("/api/warehouses/{id}", limit(h.instrument("warehouse_update", h.SaveWarehouse))).Methods("PUT")
	router.HandleFunc("/api/warehouses/{id}", limit(h.instrument("warehouse_delete", h.DeleteWarehouse))).Methods("DELETE")

	router.HandleFunc("/api/categories", limit(h.instrument("category_create", h.SaveCategory))).Methods("POST")
	router.HandleFunc("/api/categories/{id}", limit(h.instrument("category_delete", h.DeleteCategory))).Methods("DELETE")

	router.HandleFunc("/api/products/{id}", limit(h.instrument("product_update", h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", limit(h.instrument("product_delete", h.DeleteProduct))).Methods("DELETE")
}

// RegisterHealthCheck registers the health endpoint, which probes the
// upstream catalog.
func (h *DashboardHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if _, err := h.warehouses.List(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Catalog service unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Dashboard service is healthy",
		})
	}).Methods("GET")
}

// GetRows handles GET /api/rows?view=all|warehouse|category
func (h *DashboardHandler) GetRows(w http.ResponseWriter, r *http.Request) {
	mode, err := view.ParseMode(r.URL.Query().Get("view"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	warehouseName := r.URL.Query().Get("warehouse")
	categoryName := r.URL.Query().Get("category")
	if mode == view.ModeByWarehouse && warehouseName == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "warehouse parameter is required for the warehouse view"})
		return
	}
	if mode == view.ModeByCategory && categoryName == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "category parameter is required for the category view"})
		return
	}

	p := h.session(w, r)
	rows, err := p.Load(r.Context(), mode, warehouseName, categoryName)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"rows":           rows,
			"show_category":  mode.ShowCategory(),
			"show_warehouse": mode.ShowWarehouse(),
		},
	})
}

// GetNotice handles GET /api/notice
func (h *DashboardHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	p := h.session(w, r)
	n, ok := p.Notice()
	if !ok {
		respondJSON(w, http.StatusOK, Response{Success: true})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: n})
}

type addInventoryRequest struct {
	Brand       string          `json:"brand"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Warehouse   string          `json:"warehouse"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
}

// AddInventory handles POST /api/inventory
func (h *DashboardHandler) AddInventory(w http.ResponseWriter, r *http.Request) {
	var req addInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	// Form validation stays at the edge; the workflow only sees clean input.
	if req.Brand == "" || req.Name == "" || req.Warehouse == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "brand, name and warehouse are required"})
		return
	}
	if req.Quantity < 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "quantity cannot be negative"})
		return
	}
	if req.Price.IsNegative() {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "price cannot be negative"})
		return
	}

	p := h.session(w, r)
	err := p.AddInventory(r.Context(), command.AddInventoryCommand{
		Brand:         req.Brand,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryName:  req.Category,
		WarehouseName: req.Warehouse,
		Size:          req.Size,
		Quantity:      req.Quantity,
	})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inventory created successfully",
		Data:    map[string]interface{}{"rows": p.Rows()},
	})
}

type updateInventoryRequest struct {
	Warehouse string `json:"warehouse"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// UpdateInventory handles PUT /api/inventory/{id}
func (h *DashboardHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Quantity < 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "quantity cannot be negative"})
		return
	}

	p := h.session(w, r)
	err := p.UpdateInventory(r.Context(), command.UpdateInventoryCommand{
		ID:            id,
		WarehouseName: req.Warehouse,
		Size:          req.Size,
		Quantity:      req.Quantity,
	})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory updated successfully",
		Data:    map[string]interface{}{"rows": p.Rows()},
	})
}

// DeleteInventory handles DELETE /api/inventory/{id}
func (h *DashboardHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p := h.session(w, r)
	if err := p.DeleteInventory(r.Context(), id); err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory deleted successfully",
		Data:    map[string]interface{}{"rows": p.Rows()},
	})
}

// ListWarehouses handles GET /api/warehouses
func (h *DashboardHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.listWarehouses.Handle(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: warehouses})
}

// GetUtilization handles GET /api/warehouses/{name}/utilization
func (h *DashboardHandler) GetUtilization(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	u, err := h.utilization.Handle(r.Context(), query.UtilizationQuery{WarehouseName: name})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"current": u.Current,
			"max":     u.Max,
			"full":    u.Full(),
			"can_add": u.CanAdd(),
		},
	})
}

type warehouseRequest struct {
	Name        string `json:"name"`
	MaxCapacity int    `json:"max_capacity"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

// SaveWarehouse handles POST /api/warehouses and PUT /api/warehouses/{id}
func (h *DashboardHandler) SaveWarehouse(w http.ResponseWriter, r *http.Request) {
	var id uint
	if raw, ok := mux.Vars(r)["id"]; ok {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid warehouse ID"})
			return
		}
		id = uint(parsed)
	}

	var req warehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" || req.MaxCapacity <= 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "name and a positive max capacity are required"})
		return
	}

	warehouse, err := h.saveWarehouse.Handle(r.Context(), command.SaveWarehouseCommand{
		ID:          id,
		Name:        req.Name,
		MaxCapacity: req.MaxCapacity,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
	})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	respondJSON(w, status, Response{Success: true, Message: "Warehouse saved successfully", Data: warehouse})
}

// DeleteWarehouse handles DELETE /api/warehouses/{id}
func (h *DashboardHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.deleteWarehouse.Handle(r.Context(), command.DeleteWarehouseCommand{ID: id}); err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Warehouse deleted successfully"})
}

// ListCategories handles GET /api/categories
func (h *DashboardHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Handle(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

type categoryRequest struct {
	Name string `json:"name"`
}

// SaveCategory handles POST /api/categories
func (h *DashboardHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "name is required"})
		return
	}

	category, err := h.saveCategory.Handle(r.Context(), command.SaveCategoryCommand{Name: req.Name})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Category created successfully", Data: category})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *DashboardHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.deleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{ID: id}); err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

// ListProducts handles GET /api/products
func (h *DashboardHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Handle(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

type productRequest struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// UpdateProduct handles PUT /api/products/{id}
func (h *DashboardHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Price.IsNegative() {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "price cannot be negative"})
		return
	}

	product, err := h.updateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:           id,
		Description:  req.Description,
		Price:        req.Price,
		CategoryName: req.Category,
	})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product updated successfully", Data: product})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *DashboardHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// session resolves the caller's page, minting a session when needed. The
// session ID always travels back on the response.
func (h *DashboardHandler) session(w http.ResponseWriter, r *http.Request) *page.Page {
	p, id := h.pages.Get(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, id)
	h.activeSessions.Set(float64(h.pages.Len()))
	return p
}

// respondFailure maps a workflow failure onto an HTTP status. Upstream
// server-class detail is logged, never echoed.
func (h *DashboardHandler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Request failed")

	switch domain.ClassOf(err) {
	case domain.FailureNotFound:
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Resource not found"})
	case domain.FailureValidation:
		msg := domain.ServerMessage(err)
		if msg == "" {
			msg = "Invalid request"
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: msg})
	case domain.FailureServer:
		respondJSON(w, http.StatusBadGateway, Response{Success: false, Error: "Catalog service error, try again later"})
	default:
		msg := domain.ServerMessage(err)
		if msg == "" {
			msg = "An error occurred"
		}
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: msg})
	}
}

// instrument wraps a handler with the request counter and latency histogram.
func (h *DashboardHandler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.status)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
