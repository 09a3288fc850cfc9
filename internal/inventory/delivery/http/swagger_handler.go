package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the StockTrail API
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateItem godoc
// @Summary Create inventory item
// @Description Create a new inventory item with an optional opening quantity (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_name=string,product_type_id=int,description=string,unit_price=number,quantity=int,reorder_level=int,unit_of_measure=string} true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/inventory [post]
func (h *InventoryHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List inventory items
// @Description Get a list of inventory items with filtering and pagination
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status (active, inactive)"
// @Param product_type_id query int false "Filter by product type"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get inventory item by ID
// @Description Get a specific inventory item by its ID
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [get]
func (h *InventoryHandler) GetItemDoc() {}

// LowStock godoc
// @Summary List low stock items
// @Description Get items whose quantity is at or below their reorder level, lowest first
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStockDoc() {}

// UpdateItem godoc
// @Summary Update inventory item
// @Description Update descriptive fields of an item; quantity is only changed through stock adjustments (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{product_name=string,product_type_id=int,description=string,unit_price=number,reorder_level=int,unit_of_measure=string,status=string} true "Item data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete inventory item
// @Description Soft delete an item; rejected while stock requests or transactions reference it (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItemDoc() {}

// AdjustStock godoc
// @Summary Adjust stock quantity
// @Description Apply a signed quantity delta to an item; the quantity never goes below zero (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{quantity_change=int,transaction_type=string,notes=string} true "Adjustment data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory/{id}/stock [post]
func (h *InventoryHandler) AdjustStockDoc() {}

// ListTransactions godoc
// @Summary List stock transactions
// @Description Get the audit trail of stock movements for an item, newest first (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id}/transactions [get]
func (h *InventoryHandler) ListTransactionsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
