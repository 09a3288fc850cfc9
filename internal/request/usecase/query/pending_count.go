package query

import (
	"context"

	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// PendingCountHandler handles the pending count query.
type PendingCountHandler struct {
	repo domain.RequestRepository
}

// NewPendingCountHandler creates a new pending count handler
func NewPendingCountHandler(repo domain.RequestRepository) *PendingCountHandler {
	return &PendingCountHandler{repo: repo}
}

// Handle returns the number of requests still awaiting a decision.
func (h *PendingCountHandler) Handle(ctx context.Context) (int64, error) {
	return h.repo.PendingCount(ctx)
}
