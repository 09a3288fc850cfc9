package domain

import "context"

// DashboardAnalytics is the homepage summary.
type DashboardAnalytics struct {
	TotalProducts       int64   `json:"total_products"`
	LowStockItems       int64   `json:"low_stock_items"`
	PendingRequests     int64   `json:"pending_requests"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	RecentTransactions  int64   `json:"recent_transactions"`
}

// MostRequestedItem aggregates request demand per item.
type MostRequestedItem struct {
	ItemID        uint   `json:"item_id"`
	ProductName   string `json:"product_name"`
	RequestCount  int64  `json:"request_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ValuationRow is the inventory value grouped by classification.
type ValuationRow struct {
	ProductTypeID *uint   `json:"product_type_id"`
	ItemCount     int64   `json:"item_count"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// MovementRow is one day's ledger totals.
type MovementRow struct {
	Day     string `json:"day"`
	Added   int64  `json:"added"`
	Removed int64  `json:"removed"`
}

// ReportRepository defines the read-only aggregation contract. Nothing here
// mutates state.
type ReportRepository interface {
	DashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error)
	MostRequestedItems(ctx context.Context, startDate, endDate string, limit int) ([]MostRequestedItem, error)
	InventoryValuation(ctx context.Context) ([]ValuationRow, error)
	MonthlyStockMovement(ctx context.Context, year, month int) ([]MovementRow, error)
}
