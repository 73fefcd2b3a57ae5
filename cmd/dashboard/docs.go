package main

// @title Stockdeck Dashboard API
// @version 1.0
// @description Backend-for-frontend of the inventory management dashboard: flattened inventory rows, warehouse utilization and write-through CRUD against the upstream catalog service.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/peakstock/stockdeck

// @license.name MIT
// @license.url https://github.com/peakstock/stockdeck/blob/main/LICENSE

// @host localhost:8090
// @BasePath /

// @tag.name Rows
// @tag.description Flattened inventory row projections per aggregation view

// @tag.name Inventory
// @tag.description Inventory mutation endpoints

// @tag.name Warehouses
// @tag.description Warehouse management and capacity gating

// @tag.name Notice
// @tag.description Transient error notices

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
