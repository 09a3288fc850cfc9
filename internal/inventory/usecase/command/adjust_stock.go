package command

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/kafka"
	"github.com/stocktrail/stocktrail/pkg/logger"
)

// StockEventPublisher publishes ledger movements to the event stream.
type StockEventPublisher interface {
	PublishStockMovement(ctx context.Context, event kafka.StockMovementEvent) error
}

// AdjustStockCommand is the admin-only direct ledger mutation, independent of
// the request workflow.
type AdjustStockCommand struct {
	ItemID          uint
	QuantityChange  int
	TransactionType string
	ActorID         uint
	Notes           string
}

// AdjustStockHandler handles adjust stock command
type AdjustStockHandler struct {
	repo      domain.InventoryRepository
	publisher StockEventPublisher
}

// NewAdjustStockHandler creates a new adjust stock handler. publisher may be
// nil when no broker is configured.
func NewAdjustStockHandler(repo domain.InventoryRepository, publisher StockEventPublisher) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo, publisher: publisher}
}

// Handle executes the adjust stock command
func (h *AdjustStockHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*domain.DeltaResult, error) {
	if cmd.ItemID == 0 {
		return nil, fmt.Errorf("item id is required")
	}
	if cmd.QuantityChange == 0 {
		return nil, fmt.Errorf("quantity change cannot be zero")
	}
	if !domain.ValidTransactionType(cmd.TransactionType) {
		return nil, fmt.Errorf("invalid transaction type: %s", cmd.TransactionType)
	}
	if cmd.TransactionType == domain.TransactionAdd && cmd.QuantityChange < 0 {
		return nil, fmt.Errorf("add transactions must increase stock")
	}
	if cmd.TransactionType == domain.TransactionRemove && cmd.QuantityChange > 0 {
		return nil, fmt.Errorf("remove transactions must decrease stock")
	}

	result, err := h.repo.ApplyDelta(ctx, cmd.ItemID, cmd.QuantityChange, cmd.TransactionType, cmd.ActorID, cmd.Notes)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.StockMovementEvent{
			EventType:       kafka.EventTypeStockMovement,
			ItemID:          cmd.ItemID,
			QuantityChange:  cmd.QuantityChange,
			NewQuantity:     result.NewQuantity,
			TransactionID:   result.Transaction.ID,
			TransactionType: cmd.TransactionType,
			ActorID:         cmd.ActorID,
		}
		if err := h.publisher.PublishStockMovement(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Uint("item_id", cmd.ItemID).Msg("Failed to publish stock movement event")
		}
	}

	return result, nil
}
