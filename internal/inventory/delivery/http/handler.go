package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/inventory/usecase/command"
	"github.com/stocktrail/stocktrail/internal/inventory/usecase/query"
	userhttp "github.com/stocktrail/stocktrail/internal/user/delivery/http"
	"github.com/stocktrail/stocktrail/pkg/logger"
)

// InventoryHandler handles HTTP requests for the inventory ledger.
type InventoryHandler struct {
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler
	adjustHandler *command.AdjustStockHandler

	getHandler          *query.GetItemHandler
	listHandler         *query.ListItemsHandler
	lowStockHandler     *query.LowStockHandler
	transactionsHandler *query.ListTransactionsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(repo domain.InventoryRepository, publisher command.StockEventPublisher) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_requests_total",
			Help: "Total number of inventory endpoint requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_request_duration_seconds",
			Help:    "Duration of inventory endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &InventoryHandler{
		createHandler:       command.NewCreateItemHandler(repo),
		updateHandler:       command.NewUpdateItemHandler(repo),
		deleteHandler:       command.NewDeleteItemHandler(repo),
		adjustHandler:       command.NewAdjustStockHandler(repo, publisher),
		getHandler:          query.NewGetItemHandler(repo),
		listHandler:         query.NewListItemsHandler(repo),
		lowStockHandler:     query.NewLowStockHandler(repo),
		transactionsHandler: query.NewListTransactionsHandler(repo),
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *InventoryHandler) observe(method, endpoint string, status int, start time.Time) {
	h.requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// statusForError maps ledger errors to HTTP status codes. This is the only
// place the error kinds become protocol specific.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrItemInUse):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// CreateItem handles POST /api/inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req struct {
		ProductName   string  `json:"product_name"`
		ProductTypeID *uint   `json:"product_type_id"`
		Description   string  `json:"description"`
		UnitPrice     float64 `json:"unit_price"`
		Quantity      int     `json:"quantity"`
		ReorderLevel  int     `json:"reorder_level"`
		UnitOfMeasure string  `json:"unit_of_measure"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.observe("POST", "/api/inventory", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateItemCommand{
		ProductName:   req.ProductName,
		ProductTypeID: req.ProductTypeID,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		Quantity:      req.Quantity,
		ReorderLevel:  req.ReorderLevel,
		UnitOfMeasure: req.UnitOfMeasure,
		CreatedBy:     userhttp.CallerID(r),
	})
	if err != nil {
		status := statusForError(err)
		logger.Error(r.Context()).Err(err).Msg("Failed to create item")
		h.observe("POST", "/api/inventory", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("POST", "/api/inventory", http.StatusCreated, start)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/inventory/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := pathID(r)
	if err != nil {
		h.observe("GET", "/api/inventory/{id}", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	item, err := h.getHandler.Handle(r.Context(), query.GetItemQuery{ItemID: id})
	if err != nil {
		status := statusForError(err)
		h.observe("GET", "/api/inventory/{id}", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("GET", "/api/inventory/{id}", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: item})
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListItemsQuery{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	}
	if s := r.URL.Query().Get("product_type_id"); s != "" {
		if typeID, err := strconv.ParseUint(s, 10, 32); err == nil {
			id := uint(typeID)
			q.ProductTypeID = &id
		}
	}

	items, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.observe("GET", "/api/inventory", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("GET", "/api/inventory", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// LowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	items, err := h.lowStockHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock items")
		h.observe("GET", "/api/inventory/low-stock", http.StatusInternalServerError, start)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list low stock items"})
		return
	}

	h.observe("GET", "/api/inventory/low-stock", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// UpdateItem handles PUT /api/inventory/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := pathID(r)
	if err != nil {
		h.observe("PUT", "/api/inventory/{id}", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	var req struct {
		ProductName   string  `json:"product_name"`
		ProductTypeID *uint   `json:"product_type_id"`
		Description   string  `json:"description"`
		UnitPrice     float64 `json:"unit_price"`
		ReorderLevel  int     `json:"reorder_level"`
		UnitOfMeasure string  `json:"unit_of_measure"`
		Status        string  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.observe("PUT", "/api/inventory/{id}", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		ItemID:        id,
		ProductName:   req.ProductName,
		ProductTypeID: req.ProductTypeID,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		ReorderLevel:  req.ReorderLevel,
		UnitOfMeasure: req.UnitOfMeasure,
		Status:        req.Status,
	})
	if err != nil {
		status := statusForError(err)
		h.observe("PUT", "/api/inventory/{id}", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("PUT", "/api/inventory/{id}", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item updated successfully", Data: item})
}

// DeleteItem handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := pathID(r)
	if err != nil {
		h.observe("DELETE", "/api/inventory/{id}", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{ItemID: id}); err != nil {
		status := statusForError(err)
		h.observe("DELETE", "/api/inventory/{id}", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("DELETE", "/api/inventory/{id}", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item deleted successfully"})
}

// AdjustStock handles POST /api/inventory/{id}/stock, the admin-only direct
// ledger mutation outside the request workflow.
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := pathID(r)
	if err != nil {
		h.observe("POST", "/api/inventory/{id}/stock", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	var req struct {
		QuantityChange  int    `json:"quantity_change"`
		TransactionType string `json:"transaction_type"`
		Notes           string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.observe("POST", "/api/inventory/{id}/stock", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.adjustHandler.Handle(r.Context(), command.AdjustStockCommand{
		ItemID:          id,
		QuantityChange:  req.QuantityChange,
		TransactionType: req.TransactionType,
		ActorID:         userhttp.CallerID(r),
		Notes:           req.Notes,
	})
	if err != nil {
		status := statusForError(err)
		logger.Error(r.Context()).Err(err).Uint("item_id", id).Msg("Failed to adjust stock")
		h.observe("POST", "/api/inventory/{id}/stock", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("POST", "/api/inventory/{id}/stock", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock adjusted successfully",
		Data:    result,
	})
}

// ListTransactions handles GET /api/inventory/{id}/transactions
func (h *InventoryHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := pathID(r)
	if err != nil {
		h.observe("GET", "/api/inventory/{id}/transactions", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.transactionsHandler.Handle(r.Context(), query.ListTransactionsQuery{
		ItemID: id,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		status := statusForError(err)
		h.observe("GET", "/api/inventory/{id}/transactions", status, start)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.observe("GET", "/api/inventory/{id}/transactions", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}

// RegisterRoutes registers all inventory routes. low-stock is registered
// before the {id} routes so mux does not swallow it as a path parameter.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory/low-stock", userhttp.AuthMiddleware(h.LowStock)).Methods("GET")
	router.HandleFunc("/api/inventory", userhttp.AuthMiddleware(h.ListItems)).Methods("GET")
	router.HandleFunc("/api/inventory", userhttp.AdminMiddleware(h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/inventory/{id}", userhttp.AuthMiddleware(h.GetItem)).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", userhttp.AdminMiddleware(h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/inventory/{id}", userhttp.AdminMiddleware(h.DeleteItem)).Methods("DELETE")
	router.HandleFunc("/api/inventory/{id}/stock", userhttp.AdminMiddleware(h.AdjustStock)).Methods("POST")
	router.HandleFunc("/api/inventory/{id}/transactions", userhttp.AdminMiddleware(h.ListTransactions)).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint.
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "Service is healthy"})
	}).Methods("GET")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
