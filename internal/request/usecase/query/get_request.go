package query

import (
	"context"
	"fmt"

	userdomain "github.com/stocktrail/stocktrail/internal/user/domain"
	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// GetRequestQuery identifies the request and the caller asking for it.
type GetRequestQuery struct {
	RequestID  uint
	CallerID   uint
	CallerRole string
}

// GetRequestHandler handles get request query
type GetRequestHandler struct {
	repo domain.RequestRepository
}

// NewGetRequestHandler creates a new get request handler
func NewGetRequestHandler(repo domain.RequestRepository) *GetRequestHandler {
	return &GetRequestHandler{repo: repo}
}

// Handle executes the get request query. Staff callers may only read their
// own requests; the policy lives here, not in the transport layer.
func (h *GetRequestHandler) Handle(ctx context.Context, q GetRequestQuery) (*domain.StockRequest, error) {
	if q.RequestID == 0 {
		return nil, fmt.Errorf("request id is required")
	}

	request, err := h.repo.FindByID(ctx, q.RequestID)
	if err != nil {
		return nil, err
	}

	if q.CallerRole != userdomain.RoleAdmin && request.RequestedBy != q.CallerID {
		return nil, domain.ErrAccessDenied
	}

	return request, nil
}
