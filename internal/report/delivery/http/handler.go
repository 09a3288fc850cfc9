package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/stocktrail/stocktrail/internal/report/domain"
	"github.com/stocktrail/stocktrail/internal/report/usecase/query"
	userhttp "github.com/stocktrail/stocktrail/internal/user/delivery/http"
	"github.com/stocktrail/stocktrail/pkg/logger"
)

const dashboardCacheKey = "reports:dashboard"
const dashboardCacheTTL = time.Minute

// ReportHandler serves the read-only reporting endpoints. The dashboard
// response is cached in Redis for a short TTL; the cache is skipped when no
// client is configured.
type ReportHandler struct {
	dashboardHandler     *query.DashboardHandler
	mostRequestedHandler *query.MostRequestedHandler
	valuationHandler     *query.ValuationHandler
	movementHandler      *query.StockMovementHandler

	cache *redis.Client
}

// NewReportHandler creates a new report handler. cache may be nil.
func NewReportHandler(repo domain.ReportRepository, cache *redis.Client) *ReportHandler {
	return &ReportHandler{
		dashboardHandler:     query.NewDashboardHandler(repo),
		mostRequestedHandler: query.NewMostRequestedHandler(repo),
		valuationHandler:     query.NewValuationHandler(repo),
		movementHandler:      query.NewStockMovementHandler(repo),
		cache:                cache,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Dashboard handles GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("cache_key", dashboardCacheKey).Msg("Dashboard cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}
	}

	analytics, err := h.dashboardHandler.Handle(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to build dashboard analytics")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build dashboard analytics"})
		return
	}

	payload, err := json.Marshal(Response{Success: true, Data: analytics})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to encode response"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to cache dashboard analytics")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(payload)
}

// MostRequested handles GET /api/reports/most-requested
func (h *ReportHandler) MostRequested(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.mostRequestedHandler.Handle(r.Context(), query.MostRequestedQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Limit:     limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build most requested report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build most requested report"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: rows})
}

// Valuation handles GET /api/reports/valuation
func (h *ReportHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.valuationHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build valuation report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build valuation report"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: rows})
}

// StockMovement handles GET /api/reports/stock-movement
func (h *ReportHandler) StockMovement(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	rows, err := h.movementHandler.Handle(r.Context(), query.StockMovementQuery{Year: year, Month: month})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: rows})
}

// RegisterRoutes registers all reporting routes, admin-only.
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/dashboard", userhttp.AdminMiddleware(h.Dashboard)).Methods("GET")
	router.HandleFunc("/api/reports/most-requested", userhttp.AdminMiddleware(h.MostRequested)).Methods("GET")
	router.HandleFunc("/api/reports/valuation", userhttp.AdminMiddleware(h.Valuation)).Methods("GET")
	router.HandleFunc("/api/reports/stock-movement", userhttp.AdminMiddleware(h.StockMovement)).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
