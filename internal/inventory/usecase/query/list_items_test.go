package query

import (
	"context"
	"testing"
)

func TestListItems_LimitDefaults(t *testing.T) {
	repo := &mockItemRepo{}
	handler := NewListItemsHandler(repo)

	cases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero defaults", 0, 50},
		{"within bounds", 30, 30},
		{"capped", 500, 100},
	}
	for _, tc := range cases {
		if _, err := handler.Handle(context.Background(), ListItemsQuery{Limit: tc.limit}); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if repo.lastFilter.Limit != tc.wantLimit {
			t.Errorf("%s: expected limit %d, got %d", tc.name, tc.wantLimit, repo.lastFilter.Limit)
		}
	}
}

func TestListItems_StatusFilter(t *testing.T) {
	repo := &mockItemRepo{}
	handler := NewListItemsHandler(repo)

	if _, err := handler.Handle(context.Background(), ListItemsQuery{Status: "archived"}); err == nil {
		t.Error("expected error for unknown status filter")
	}
	if _, err := handler.Handle(context.Background(), ListItemsQuery{Status: "active"}); err != nil {
		t.Errorf("unexpected error for valid status: %v", err)
	}
}
