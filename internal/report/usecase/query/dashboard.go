package query

import (
	"context"

	"github.com/stocktrail/stocktrail/internal/report/domain"
)

// DashboardHandler handles the dashboard analytics query.
type DashboardHandler struct {
	repo domain.ReportRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(repo domain.ReportRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// Handle executes the dashboard analytics query
func (h *DashboardHandler) Handle(ctx context.Context) (*domain.DashboardAnalytics, error) {
	return h.repo.DashboardAnalytics(ctx)
}
