package command

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// CreateItemCommand represents the command to add a product to the catalog.
type CreateItemCommand struct {
	ProductName   string
	ProductTypeID *uint
	Description   string
	UnitPrice     float64
	Quantity      int
	ReorderLevel  int
	UnitOfMeasure string
	CreatedBy     uint
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.InventoryRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.InventoryRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command. An item that starts with stock
// gets an opening "add" ledger entry so its history replays to the current
// quantity.
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.InventoryItem, error) {
	if cmd.ProductName == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.UnitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.ReorderLevel < 0 {
		return nil, fmt.Errorf("reorder level cannot be negative")
	}

	item := &domain.InventoryItem{
		ProductName:   cmd.ProductName,
		ProductTypeID: cmd.ProductTypeID,
		Description:   cmd.Description,
		UnitPrice:     cmd.UnitPrice,
		ReorderLevel:  cmd.ReorderLevel,
		UnitOfMeasure: cmd.UnitOfMeasure,
		Status:        domain.StatusActive,
		CreatedBy:     cmd.CreatedBy,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if cmd.Quantity > 0 {
		result, err := h.repo.ApplyDelta(ctx, item.ID, cmd.Quantity, domain.TransactionAdd, cmd.CreatedBy, "initial stock")
		if err != nil {
			return nil, fmt.Errorf("failed to record initial stock: %w", err)
		}
		item.Quantity = result.NewQuantity
	}

	return item, nil
}
