package query

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// GetItemQuery represents the query to get an item.
type GetItemQuery struct {
	ItemID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.InventoryRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.InventoryRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) (*domain.InventoryItem, error) {
	if q.ItemID == 0 {
		return nil, fmt.Errorf("item id is required")
	}

	return h.repo.FindByID(ctx, q.ItemID)
}
