package query

import (
	"context"

	"github.com/stocktrail/stocktrail/internal/report/domain"
)

// ValuationHandler handles the inventory valuation query.
type ValuationHandler struct {
	repo domain.ReportRepository
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(repo domain.ReportRepository) *ValuationHandler {
	return &ValuationHandler{repo: repo}
}

// Handle executes the inventory valuation query
func (h *ValuationHandler) Handle(ctx context.Context) ([]domain.ValuationRow, error) {
	return h.repo.InventoryValuation(ctx)
}
