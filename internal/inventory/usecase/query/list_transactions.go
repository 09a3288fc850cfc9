package query

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// ListTransactionsQuery represents the query for an item's ledger history.
type ListTransactionsQuery struct {
	ItemID uint
	Limit  int
	Offset int
}

// ListTransactionsHandler handles list transactions query
type ListTransactionsHandler struct {
	repo domain.InventoryRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.InventoryRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the list transactions query
func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) ([]domain.StockTransaction, error) {
	if q.ItemID == 0 {
		return nil, fmt.Errorf("item id is required")
	}

	if q.Limit == 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}

	if _, err := h.repo.FindByID(ctx, q.ItemID); err != nil {
		return nil, err
	}

	return h.repo.FindTransactions(ctx, q.ItemID, q.Limit, q.Offset)
}
