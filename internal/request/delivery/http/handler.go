package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/request/domain"
	"github.com/stocktrail/stocktrail/internal/request/usecase/command"
	"github.com/stocktrail/stocktrail/internal/request/usecase/query"
	userhttp "github.com/stocktrail/stocktrail/internal/user/delivery/http"
	"github.com/stocktrail/stocktrail/pkg/logger"
)

// RequestHandler handles HTTP requests for the stock request lifecycle.
type RequestHandler struct {
	createHandler  *command.CreateRequestHandler
	processHandler *command.ProcessRequestHandler

	getHandler     *query.GetRequestHandler
	listHandler    *query.ListRequestsHandler
	pendingHandler *query.PendingCountHandler

	processedCounter *prometheus.CounterVec
	pendingGauge     prometheus.Gauge
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(
	repo domain.RequestRepository,
	items command.ItemLookup,
	publisher command.RequestEventPublisher,
) *RequestHandler {
	processedCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_requests_processed_total",
			Help: "Total number of stock requests reaching a terminal state",
		},
		[]string{"decision"},
	)
	pendingGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stock_requests_pending",
			Help: "Number of stock requests currently pending",
		},
	)
	prometheus.MustRegister(processedCounter)
	prometheus.MustRegister(pendingGauge)

	return &RequestHandler{
		createHandler:    command.NewCreateRequestHandler(repo, items),
		processHandler:   command.NewProcessRequestHandler(repo, publisher),
		getHandler:       query.NewGetRequestHandler(repo),
		listHandler:      query.NewListRequestsHandler(repo),
		pendingHandler:   query.NewPendingCountHandler(repo),
		processedCounter: processedCounter,
		pendingGauge:     pendingGauge,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// statusForError maps lifecycle errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, inventorydomain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyProcessed), errors.Is(err, inventorydomain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// CreateRequest handles POST /api/requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   uint   `json:"item_id"`
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	request, err := h.createHandler.Handle(r.Context(), command.CreateRequestCommand{
		ItemID:      req.ItemID,
		RequestedBy: userhttp.CallerID(r),
		Quantity:    req.Quantity,
		Reason:      req.Reason,
	})
	if err != nil {
		status := statusForError(err)
		logger.Error(r.Context()).Err(err).Uint("item_id", req.ItemID).Msg("Failed to create stock request")
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Request created successfully",
		Data:    request,
	})
}

// ProcessRequest handles PUT /api/requests/{id}/process
func (h *RequestHandler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request ID"})
		return
	}

	var req struct {
		Decision string `json:"decision"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	start := time.Now()
	request, err := h.processHandler.Handle(r.Context(), command.ProcessRequestCommand{
		RequestID: uint(id),
		AdminID:   userhttp.CallerID(r),
		Decision:  req.Decision,
		Notes:     req.Notes,
	})
	if err != nil {
		status := statusForError(err)
		logger.Error(r.Context()).Err(err).Uint64("request_id", id).Msg("Failed to process stock request")
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.processedCounter.WithLabelValues(request.Status).Inc()
	logger.Info(r.Context()).
		Uint("request_id", request.ID).
		Str("decision", request.Status).
		Dur("duration", time.Since(start)).
		Msg("Stock request processed")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Request processed successfully",
		Data:    request,
	})
}

// GetRequest handles GET /api/requests/{id}
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request ID"})
		return
	}

	request, err := h.getHandler.Handle(r.Context(), query.GetRequestQuery{
		RequestID:  uint(id),
		CallerID:   userhttp.CallerID(r),
		CallerRole: userhttp.CallerRole(r),
	})
	if err != nil {
		status := statusForError(err)
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: request})
}

// ListRequests handles GET /api/requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListRequestsQuery{
		Status:     r.URL.Query().Get("status"),
		CallerID:   userhttp.CallerID(r),
		CallerRole: userhttp.CallerRole(r),
		Limit:      limit,
		Offset:     offset,
	}
	if s := r.URL.Query().Get("user_id"); s != "" {
		if userID, err := strconv.ParseUint(s, 10, 32); err == nil {
			id := uint(userID)
			q.RequestedBy = &id
		}
	}

	requests, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: requests})
}

// PendingCount handles GET /api/requests/pending-count
func (h *RequestHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.pendingHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to count pending requests")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to count pending requests"})
		return
	}

	h.pendingGauge.Set(float64(count))
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]int64{"pending_count": count},
	})
}

// RegisterRoutes registers all request lifecycle routes. pending-count is
// registered before the {id} routes so mux does not swallow it as a path
// parameter.
func (h *RequestHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/requests/pending-count", userhttp.AdminMiddleware(h.PendingCount)).Methods("GET")
	router.HandleFunc("/api/requests", userhttp.AuthMiddleware(h.CreateRequest)).Methods("POST")
	router.HandleFunc("/api/requests", userhttp.AuthMiddleware(h.ListRequests)).Methods("GET")
	router.HandleFunc("/api/requests/{id}", userhttp.AuthMiddleware(h.GetRequest)).Methods("GET")
	router.HandleFunc("/api/requests/{id}/process", userhttp.AdminMiddleware(h.ProcessRequest)).Methods("PUT")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
