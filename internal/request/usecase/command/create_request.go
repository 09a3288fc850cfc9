package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// ItemLookup is the slice of the inventory ledger the state machine needs
// when validating a new request.
type ItemLookup interface {
	FindByID(ctx context.Context, id uint) (*inventorydomain.InventoryItem, error)
}

// CreateRequestCommand represents a staff ask to draw down stock.
type CreateRequestCommand struct {
	ItemID      uint
	RequestedBy uint
	Quantity    int
	Reason      string
}

// CreateRequestHandler handles create request command
type CreateRequestHandler struct {
	repo  domain.RequestRepository
	items ItemLookup
}

// NewCreateRequestHandler creates a new create request handler
func NewCreateRequestHandler(repo domain.RequestRepository, items ItemLookup) *CreateRequestHandler {
	return &CreateRequestHandler{repo: repo, items: items}
}

// Handle executes the create request command. The stock-sufficiency check is
// a point-in-time read, not a reservation: stock can drop between creation
// and approval, and that surfaces as InsufficientStock at approval time.
func (h *CreateRequestHandler) Handle(ctx context.Context, cmd CreateRequestCommand) (*domain.StockRequest, error) {
	if cmd.ItemID == 0 {
		return nil, fmt.Errorf("item id is required")
	}
	if cmd.RequestedBy == 0 {
		return nil, fmt.Errorf("requesting user is required")
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := h.items.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	if item.Quantity < cmd.Quantity {
		return nil, fmt.Errorf("%w: available %d, requested %d",
			inventorydomain.ErrInsufficientStock, item.Quantity, cmd.Quantity)
	}

	request := &domain.StockRequest{
		RequestCode: fmt.Sprintf("REQ-%s", uuid.New().String()[:8]),
		ItemID:      cmd.ItemID,
		RequestedBy: cmd.RequestedBy,
		Quantity:    cmd.Quantity,
		Reason:      cmd.Reason,
		Status:      domain.StatusPending,
	}

	if err := h.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}
