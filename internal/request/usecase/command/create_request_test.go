package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// Mock ItemLookup
type mockItemLookup struct {
	items map[uint]*inventorydomain.InventoryItem
}

func (m *mockItemLookup) FindByID(ctx context.Context, id uint) (*inventorydomain.InventoryItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, inventorydomain.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func TestCreateRequest_Success(t *testing.T) {
	repo := newMockRequestRepo()
	items := &mockItemLookup{items: map[uint]*inventorydomain.InventoryItem{
		1: {ID: 1, ProductName: "Printer paper", Quantity: 20},
	}}
	handler := NewCreateRequestHandler(repo, items)

	request, err := handler.Handle(context.Background(), CreateRequestCommand{
		ItemID:      1,
		RequestedBy: 7,
		Quantity:    5,
		Reason:      "restocking the office",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if request.Status != domain.StatusPending {
		t.Errorf("new request must be pending, got %s", request.Status)
	}
	if !strings.HasPrefix(request.RequestCode, "REQ-") {
		t.Errorf("unexpected request code %q", request.RequestCode)
	}
	if request.ID == 0 {
		t.Error("expected request to be persisted with an id")
	}
	if request.ProcessedBy != nil || request.ProcessedAt != nil {
		t.Error("new request must not carry processing fields")
	}
}

func TestCreateRequest_InvalidQuantity(t *testing.T) {
	repo := newMockRequestRepo()
	items := &mockItemLookup{items: map[uint]*inventorydomain.InventoryItem{
		1: {ID: 1, Quantity: 20},
	}}
	handler := NewCreateRequestHandler(repo, items)

	for _, quantity := range []int{0, -3} {
		_, err := handler.Handle(context.Background(), CreateRequestCommand{
			ItemID: 1, RequestedBy: 7, Quantity: quantity,
		})
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got: %v", quantity, err)
		}
	}
}

func TestCreateRequest_ItemNotFound(t *testing.T) {
	repo := newMockRequestRepo()
	items := &mockItemLookup{items: map[uint]*inventorydomain.InventoryItem{}}
	handler := NewCreateRequestHandler(repo, items)

	_, err := handler.Handle(context.Background(), CreateRequestCommand{
		ItemID: 42, RequestedBy: 7, Quantity: 1,
	})
	if !errors.Is(err, inventorydomain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

// The sufficiency check at creation is a point-in-time read against current
// stock, not a reservation.
func TestCreateRequest_InsufficientStock(t *testing.T) {
	repo := newMockRequestRepo()
	items := &mockItemLookup{items: map[uint]*inventorydomain.InventoryItem{
		1: {ID: 1, Quantity: 2},
	}}
	handler := NewCreateRequestHandler(repo, items)

	_, err := handler.Handle(context.Background(), CreateRequestCommand{
		ItemID: 1, RequestedBy: 7, Quantity: 5,
	})
	if !errors.Is(err, inventorydomain.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	count, _ := repo.PendingCount(context.Background())
	if count != 0 {
		t.Errorf("rejected creation must not persist a request, got %d pending", count)
	}
}
