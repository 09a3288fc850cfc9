package query

import (
	"context"

	"github.com/stocktrail/stocktrail/internal/report/domain"
)

// MostRequestedQuery narrows the demand report.
type MostRequestedQuery struct {
	StartDate string
	EndDate   string
	Limit     int
}

// MostRequestedHandler handles the most requested items query.
type MostRequestedHandler struct {
	repo domain.ReportRepository
}

// NewMostRequestedHandler creates a new most requested handler
func NewMostRequestedHandler(repo domain.ReportRepository) *MostRequestedHandler {
	return &MostRequestedHandler{repo: repo}
}

// Handle executes the most requested items query
func (h *MostRequestedHandler) Handle(ctx context.Context, q MostRequestedQuery) ([]domain.MostRequestedItem, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 50 {
		q.Limit = 50
	}

	return h.repo.MostRequestedItems(ctx, q.StartDate, q.EndDate, q.Limit)
}
