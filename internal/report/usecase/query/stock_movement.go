package query

import (
	"context"
	"fmt"
	"time"

	"github.com/stocktrail/stocktrail/internal/report/domain"
)

// StockMovementQuery selects the month to report on. Zero values mean the
// current month.
type StockMovementQuery struct {
	Year  int
	Month int
}

// StockMovementHandler handles the monthly stock movement query.
type StockMovementHandler struct {
	repo domain.ReportRepository
}

// NewStockMovementHandler creates a new stock movement handler
func NewStockMovementHandler(repo domain.ReportRepository) *StockMovementHandler {
	return &StockMovementHandler{repo: repo}
}

// Handle executes the monthly stock movement query
func (h *StockMovementHandler) Handle(ctx context.Context, q StockMovementQuery) ([]domain.MovementRow, error) {
	now := time.Now()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Month < 1 || q.Month > 12 {
		return nil, fmt.Errorf("invalid month: %d", q.Month)
	}

	return h.repo.MonthlyStockMovement(ctx, q.Year, q.Month)
}
