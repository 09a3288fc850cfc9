package query

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/request/domain"
	userdomain "github.com/stocktrail/stocktrail/internal/user/domain"
)

// ListRequestsQuery carries the caller identity alongside the filters so
// scoping is applied in one place.
type ListRequestsQuery struct {
	Status      string
	RequestedBy *uint
	CallerID    uint
	CallerRole  string
	Limit       int
	Offset      int
}

// ListRequestsHandler handles list requests query
type ListRequestsHandler struct {
	repo domain.RequestRepository
}

// NewListRequestsHandler creates a new list requests handler
func NewListRequestsHandler(repo domain.RequestRepository) *ListRequestsHandler {
	return &ListRequestsHandler{repo: repo}
}

// Handle executes the list requests query. Non-admin callers are always
// scoped to their own requests, whatever the filter says.
func (h *ListRequestsHandler) Handle(ctx context.Context, q ListRequestsQuery) ([]domain.StockRequest, error) {
	if q.Status != "" && q.Status != domain.StatusPending && !domain.ValidDecision(q.Status) {
		return nil, fmt.Errorf("invalid status filter: %s", q.Status)
	}

	requestedBy := q.RequestedBy
	if q.CallerRole != userdomain.RoleAdmin {
		requestedBy = &q.CallerID
	}

	if q.Limit == 0 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	return h.repo.FindAll(ctx, domain.RequestFilter{
		Status:      q.Status,
		RequestedBy: requestedBy,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
}
