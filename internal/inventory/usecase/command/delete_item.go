package command

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an item.
type DeleteItemCommand struct {
	ItemID uint
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo domain.InventoryRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.InventoryRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command. The repository rejects the delete
// with domain.ErrItemInUse while any request or ledger entry references the
// item.
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("item id is required")
	}

	return h.repo.Delete(ctx, cmd.ItemID)
}
