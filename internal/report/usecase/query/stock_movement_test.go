package query

import (
	"context"
	"testing"
	"time"

	"github.com/stocktrail/stocktrail/internal/report/domain"
)

// Mock ReportRepository that records the arguments it was called with.
type mockReportRepo struct {
	year, month int
	limit       int
}

func (m *mockReportRepo) DashboardAnalytics(ctx context.Context) (*domain.DashboardAnalytics, error) {
	return &domain.DashboardAnalytics{}, nil
}

func (m *mockReportRepo) MostRequestedItems(ctx context.Context, startDate, endDate string, limit int) ([]domain.MostRequestedItem, error) {
	m.limit = limit
	return nil, nil
}

func (m *mockReportRepo) InventoryValuation(ctx context.Context) ([]domain.ValuationRow, error) {
	return nil, nil
}

func (m *mockReportRepo) MonthlyStockMovement(ctx context.Context, year, month int) ([]domain.MovementRow, error) {
	m.year = year
	m.month = month
	return nil, nil
}

func TestStockMovement_DefaultsToCurrentMonth(t *testing.T) {
	repo := &mockReportRepo{}
	handler := NewStockMovementHandler(repo)

	if _, err := handler.Handle(context.Background(), StockMovementQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	if repo.year != now.Year() || repo.month != int(now.Month()) {
		t.Errorf("expected %d-%d, got %d-%d", now.Year(), now.Month(), repo.year, repo.month)
	}
}

func TestStockMovement_InvalidMonth(t *testing.T) {
	repo := &mockReportRepo{}
	handler := NewStockMovementHandler(repo)

	for _, month := range []int{-1, 13} {
		if _, err := handler.Handle(context.Background(), StockMovementQuery{Year: 2026, Month: month}); err == nil {
			t.Errorf("month %d: expected error, got nil", month)
		}
	}
}

func TestMostRequested_LimitBounds(t *testing.T) {
	repo := &mockReportRepo{}
	handler := NewMostRequestedHandler(repo)

	cases := []struct {
		limit int
		want  int
	}{
		{0, 10},
		{-5, 10},
		{25, 25},
		{200, 50},
	}
	for _, tc := range cases {
		if _, err := handler.Handle(context.Background(), MostRequestedQuery{Limit: tc.limit}); err != nil {
			t.Fatalf("limit %d: unexpected error: %v", tc.limit, err)
		}
		if repo.limit != tc.want {
			t.Errorf("limit %d: expected %d, got %d", tc.limit, tc.want, repo.limit)
		}
	}
}
