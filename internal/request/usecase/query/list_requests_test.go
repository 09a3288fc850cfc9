package query

import (
	"context"
	"testing"

	"github.com/stocktrail/stocktrail/internal/request/domain"
	userdomain "github.com/stocktrail/stocktrail/internal/user/domain"
)

func TestListRequests_StaffAlwaysScopedToSelf(t *testing.T) {
	repo := &mockRequestRepo{}
	handler := NewListRequestsHandler(repo)

	other := uint(99)
	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		RequestedBy: &other,
		CallerID:    7,
		CallerRole:  userdomain.RoleStaff,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.RequestedBy == nil || *repo.lastFilter.RequestedBy != 7 {
		t.Errorf("staff filter must be scoped to caller, got %v", repo.lastFilter.RequestedBy)
	}
}

func TestListRequests_AdminSeesAll(t *testing.T) {
	repo := &mockRequestRepo{}
	handler := NewListRequestsHandler(repo)

	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		CallerID:   2,
		CallerRole: userdomain.RoleAdmin,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.RequestedBy != nil {
		t.Errorf("admin filter must not be scoped, got %v", *repo.lastFilter.RequestedBy)
	}
}

func TestListRequests_AdminCanFilterByRequester(t *testing.T) {
	repo := &mockRequestRepo{}
	handler := NewListRequestsHandler(repo)

	target := uint(7)
	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		RequestedBy: &target,
		CallerID:    2,
		CallerRole:  userdomain.RoleAdmin,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.RequestedBy == nil || *repo.lastFilter.RequestedBy != 7 {
		t.Errorf("expected requester filter 7, got %v", repo.lastFilter.RequestedBy)
	}
}

func TestListRequests_StatusFilter(t *testing.T) {
	repo := &mockRequestRepo{}
	handler := NewListRequestsHandler(repo)

	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		Status: "cancelled", CallerID: 2, CallerRole: userdomain.RoleAdmin,
	}); err == nil {
		t.Error("expected error for unknown status filter")
	}

	for _, status := range []string{domain.StatusPending, domain.StatusApproved, domain.StatusRejected} {
		if _, err := handler.Handle(context.Background(), ListRequestsQuery{
			Status: status, CallerID: 2, CallerRole: userdomain.RoleAdmin,
		}); err != nil {
			t.Errorf("status %s: unexpected error: %v", status, err)
		}
	}
}

func TestListRequests_LimitDefaults(t *testing.T) {
	repo := &mockRequestRepo{}
	handler := NewListRequestsHandler(repo)

	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		CallerID: 2, CallerRole: userdomain.RoleAdmin,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != 50 {
		t.Errorf("expected default limit 50, got %d", repo.lastFilter.Limit)
	}

	if _, err := handler.Handle(context.Background(), ListRequestsQuery{
		CallerID: 2, CallerRole: userdomain.RoleAdmin, Limit: 500,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != 100 {
		t.Errorf("expected capped limit 100, got %d", repo.lastFilter.Limit)
	}
}
