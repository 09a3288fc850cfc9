package command

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/request/domain"
	"github.com/stocktrail/stocktrail/kafka"
	"github.com/stocktrail/stocktrail/pkg/logger"
)

// RequestEventPublisher publishes request dispositions to the event stream.
type RequestEventPublisher interface {
	PublishRequestProcessed(ctx context.Context, event kafka.RequestProcessedEvent) error
}

// ProcessRequestCommand carries an admin's decision on a pending request.
type ProcessRequestCommand struct {
	RequestID uint
	AdminID   uint
	Decision  string
	Notes     string
}

// ProcessRequestHandler handles process request command
type ProcessRequestHandler struct {
	repo      domain.RequestRepository
	publisher RequestEventPublisher
}

// NewProcessRequestHandler creates a new process request handler. publisher
// may be nil when no broker is configured.
func NewProcessRequestHandler(repo domain.RequestRepository, publisher RequestEventPublisher) *ProcessRequestHandler {
	return &ProcessRequestHandler{repo: repo, publisher: publisher}
}

// Handle executes the process request command. The repository ties the
// status flip and the approval's stock deduction into one transaction; an
// InsufficientStock failure leaves the request pending rather than silently
// rejecting it.
func (h *ProcessRequestHandler) Handle(ctx context.Context, cmd ProcessRequestCommand) (*domain.StockRequest, error) {
	if cmd.RequestID == 0 {
		return nil, fmt.Errorf("request id is required")
	}
	if cmd.AdminID == 0 {
		return nil, fmt.Errorf("acting admin is required")
	}
	if !domain.ValidDecision(cmd.Decision) {
		return nil, domain.ErrInvalidDecision
	}

	request, err := h.repo.Process(ctx, cmd.RequestID, cmd.AdminID, cmd.Decision, cmd.Notes)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.RequestProcessedEvent{
			EventType:   kafka.EventTypeRequestProcessed,
			RequestID:   request.ID,
			RequestCode: request.RequestCode,
			ItemID:      request.ItemID,
			Quantity:    request.Quantity,
			Decision:    request.Status,
			ProcessedBy: cmd.AdminID,
		}
		if err := h.publisher.PublishRequestProcessed(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Uint("request_id", request.ID).Msg("Failed to publish request processed event")
		}
	}

	return request, nil
}
