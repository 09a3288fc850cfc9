package command

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// UpdateItemCommand updates descriptive fields; quantity is deliberately
// absent, stock only moves through AdjustStock.
type UpdateItemCommand struct {
	ItemID        uint
	ProductName   string
	ProductTypeID *uint
	Description   string
	UnitPrice     float64
	ReorderLevel  int
	UnitOfMeasure string
	Status        string
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.InventoryRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.InventoryItem, error) {
	if cmd.ItemID == 0 {
		return nil, fmt.Errorf("item id is required")
	}
	if cmd.ProductName == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.UnitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if cmd.ReorderLevel < 0 {
		return nil, fmt.Errorf("reorder level cannot be negative")
	}
	if cmd.Status != "" && cmd.Status != domain.StatusActive && cmd.Status != domain.StatusInactive {
		return nil, fmt.Errorf("invalid status: %s", cmd.Status)
	}

	item, err := h.repo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	item.ProductName = cmd.ProductName
	item.ProductTypeID = cmd.ProductTypeID
	item.Description = cmd.Description
	item.UnitPrice = cmd.UnitPrice
	item.ReorderLevel = cmd.ReorderLevel
	item.UnitOfMeasure = cmd.UnitOfMeasure
	if cmd.Status != "" {
		item.Status = cmd.Status
	}

	if err := h.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}
