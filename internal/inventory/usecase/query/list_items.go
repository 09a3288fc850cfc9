package query

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// ListItemsQuery represents the query to list items.
type ListItemsQuery struct {
	Status        string
	ProductTypeID *uint
	Limit         int
	Offset        int
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.InventoryRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.InventoryRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.InventoryItem, error) {
	if q.Status != "" && q.Status != domain.StatusActive && q.Status != domain.StatusInactive {
		return nil, fmt.Errorf("invalid status filter: %s", q.Status)
	}

	if q.Limit == 0 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	return h.repo.FindAll(ctx, domain.ItemFilter{
		Status:        q.Status,
		ProductTypeID: q.ProductTypeID,
		Limit:         q.Limit,
		Offset:        q.Offset,
	})
}
