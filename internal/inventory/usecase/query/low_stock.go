package query

import (
	"context"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// LowStockHandler handles the low stock query. Each call is a fresh snapshot,
// nothing is cached between invocations.
type LowStockHandler struct {
	repo domain.InventoryRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.InventoryRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns items at or below their reorder level, most depleted first.
func (h *LowStockHandler) Handle(ctx context.Context) ([]domain.InventoryItem, error) {
	return h.repo.FindLowStock(ctx)
}
