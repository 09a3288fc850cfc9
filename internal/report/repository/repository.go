package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/report/domain"
	requestdomain "github.com/stocktrail/stocktrail/internal/request/domain"
)

// GormReportRepository implements domain.ReportRepository with read-only
// aggregate queries over the ledger and request tables.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) DashboardAnalytics(ctx context.Context) (*domain.DashboardAnalytics, error) {
	db := r.db.WithContext(ctx)
	var out domain.DashboardAnalytics

	if err := db.Model(&inventorydomain.InventoryItem{}).Count(&out.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Model(&inventorydomain.InventoryItem{}).
		Where("quantity <= reorder_level").
		Count(&out.LowStockItems).Error; err != nil {
		return nil, fmt.Errorf("failed to count low stock items: %w", err)
	}
	if err := db.Model(&requestdomain.StockRequest{}).
		Where("status = ?", requestdomain.StatusPending).
		Count(&out.PendingRequests).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	if err := db.Model(&inventorydomain.InventoryItem{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&out.TotalInventoryValue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum inventory value: %w", err)
	}
	if err := db.Model(&inventorydomain.StockTransaction{}).
		Where("created_at >= ?", time.Now().Add(-24*time.Hour)).
		Count(&out.RecentTransactions).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent transactions: %w", err)
	}

	return &out, nil
}

func (r *GormReportRepository) MostRequestedItems(ctx context.Context, startDate, endDate string, limit int) ([]domain.MostRequestedItem, error) {
	query := r.db.WithContext(ctx).
		Model(&requestdomain.StockRequest{}).
		Select("stock_requests.item_id, inventory_items.product_name, COUNT(*) AS request_count, SUM(stock_requests.quantity) AS total_quantity").
		Joins("JOIN inventory_items ON inventory_items.id = stock_requests.item_id").
		Group("stock_requests.item_id, inventory_items.product_name").
		Order("request_count DESC").
		Limit(limit)

	if startDate != "" {
		query = query.Where("stock_requests.created_at >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("stock_requests.created_at <= ?", endDate)
	}

	var rows []domain.MostRequestedItem
	err := query.Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) InventoryValuation(ctx context.Context) ([]domain.ValuationRow, error) {
	var rows []domain.ValuationRow
	err := r.db.WithContext(ctx).
		Model(&inventorydomain.InventoryItem{}).
		Select("product_type_id, COUNT(*) AS item_count, SUM(quantity) AS total_quantity, SUM(quantity * unit_price) AS total_value").
		Group("product_type_id").
		Order("total_value DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) MonthlyStockMovement(ctx context.Context, year, month int) ([]domain.MovementRow, error) {
	var rows []domain.MovementRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(created_at, 'YYYY-MM-DD') AS day,
			COALESCE(SUM(CASE WHEN quantity_change > 0 THEN quantity_change ELSE 0 END), 0) AS added,
			COALESCE(SUM(CASE WHEN quantity_change < 0 THEN -quantity_change ELSE 0 END), 0) AS removed
		FROM stock_transactions
		WHERE EXTRACT(YEAR FROM created_at) = ? AND EXTRACT(MONTH FROM created_at) = ?
		GROUP BY day
		ORDER BY day`, year, month).
		Scan(&rows).Error
	return rows, err
}
