package command

import (
	"context"
	"testing"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

func TestCreateItem_WithOpeningStock(t *testing.T) {
	repo := newMockInventoryRepo()
	handler := NewCreateItemHandler(repo)

	item, err := handler.Handle(context.Background(), CreateItemCommand{
		ProductName:   "A4 paper",
		UnitPrice:     4.50,
		Quantity:      120,
		ReorderLevel:  20,
		UnitOfMeasure: "ream",
		CreatedBy:     2,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if item.ID == 0 {
		t.Error("expected item to be persisted with an id")
	}
	if item.Status != domain.StatusActive {
		t.Errorf("new item must be active, got %s", item.Status)
	}
	if item.Quantity != 120 {
		t.Errorf("expected quantity 120, got %d", item.Quantity)
	}

	txs, _ := repo.FindTransactions(context.Background(), item.ID, 0, 0)
	if len(txs) != 1 {
		t.Fatalf("expected one opening ledger entry, got %d", len(txs))
	}
	if txs[0].QuantityChange != 120 || txs[0].TransactionType != domain.TransactionAdd {
		t.Errorf("unexpected opening entry %+v", txs[0])
	}
}

func TestCreateItem_ZeroStockSkipsLedger(t *testing.T) {
	repo := newMockInventoryRepo()
	handler := NewCreateItemHandler(repo)

	item, err := handler.Handle(context.Background(), CreateItemCommand{
		ProductName: "Stapler",
		UnitPrice:   12,
		CreatedBy:   2,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	txs, _ := repo.FindTransactions(context.Background(), item.ID, 0, 0)
	if len(txs) != 0 {
		t.Errorf("zero opening stock must not write a ledger entry, got %d", len(txs))
	}
}

func TestCreateItem_Validation(t *testing.T) {
	repo := newMockInventoryRepo()
	handler := NewCreateItemHandler(repo)

	cases := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"missing name", CreateItemCommand{UnitPrice: 1}},
		{"negative price", CreateItemCommand{ProductName: "x", UnitPrice: -1}},
		{"negative quantity", CreateItemCommand{ProductName: "x", Quantity: -1}},
		{"negative reorder level", CreateItemCommand{ProductName: "x", ReorderLevel: -1}},
	}
	for _, tc := range cases {
		if _, err := handler.Handle(context.Background(), tc.cmd); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}
