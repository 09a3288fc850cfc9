package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// Mock InventoryRepository with the same non-negative guarantee the real
// ApplyDelta enforces in SQL.
type mockInventoryRepo struct {
	mu           sync.Mutex
	items        map[uint]*domain.InventoryItem
	transactions []domain.StockTransaction
	nextItemID   uint
	nextTxID     uint
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{
		items:      make(map[uint]*domain.InventoryItem),
		nextItemID: 1,
		nextTxID:   1,
	}
}

func (m *mockInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == 0 {
		item.ID = m.nextItemID
	}
	if item.ID >= m.nextItemID {
		m.nextItemID = item.ID + 1
	}
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockInventoryRepo) FindByID(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *mockInventoryRepo) FindAll(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockInventoryRepo) FindLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	return nil, nil
}

func (m *mockInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	return nil
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockInventoryRepo) ApplyDelta(ctx context.Context, itemID uint, delta int, transactionType string, actorID uint, notes string) (*domain.DeltaResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	item.Quantity += delta

	tx := domain.StockTransaction{
		ID:              m.nextTxID,
		ItemID:          itemID,
		QuantityChange:  delta,
		TransactionType: transactionType,
		PerformedBy:     actorID,
		Notes:           notes,
		CreatedAt:       time.Now(),
	}
	m.nextTxID++
	m.transactions = append(m.transactions, tx)

	return &domain.DeltaResult{NewQuantity: item.Quantity, Transaction: &tx}, nil
}

func (m *mockInventoryRepo) FindTransactions(ctx context.Context, itemID uint, limit, offset int) ([]domain.StockTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.StockTransaction
	for _, tx := range m.transactions {
		if tx.ItemID == itemID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func TestAdjustStock_Add(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.Create(context.Background(), &domain.InventoryItem{ID: 1, Quantity: 10})
	handler := NewAdjustStockHandler(repo, nil)

	result, err := handler.Handle(context.Background(), AdjustStockCommand{
		ItemID:          1,
		QuantityChange:  5,
		TransactionType: domain.TransactionAdd,
		ActorID:         2,
		Notes:           "delivery received",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if result.NewQuantity != 15 {
		t.Errorf("expected quantity 15, got %d", result.NewQuantity)
	}
	if result.Transaction == nil || result.Transaction.QuantityChange != 5 {
		t.Errorf("expected ledger entry with change 5, got %+v", result.Transaction)
	}
}

func TestAdjustStock_RemoveBelowZero(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.Create(context.Background(), &domain.InventoryItem{ID: 1, Quantity: 3})
	handler := NewAdjustStockHandler(repo, nil)

	_, err := handler.Handle(context.Background(), AdjustStockCommand{
		ItemID:          1,
		QuantityChange:  -5,
		TransactionType: domain.TransactionRemove,
		ActorID:         2,
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got: %v", err)
	}

	item, _ := repo.FindByID(context.Background(), 1)
	if item.Quantity != 3 {
		t.Errorf("failed adjustment must not touch quantity, got %d", item.Quantity)
	}
	txs, _ := repo.FindTransactions(context.Background(), 1, 0, 0)
	if len(txs) != 0 {
		t.Errorf("failed adjustment must not write a ledger entry, got %d", len(txs))
	}
}

func TestAdjustStock_Validation(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.Create(context.Background(), &domain.InventoryItem{ID: 1, Quantity: 10})
	handler := NewAdjustStockHandler(repo, nil)

	cases := []struct {
		name string
		cmd  AdjustStockCommand
	}{
		{"zero change", AdjustStockCommand{ItemID: 1, QuantityChange: 0, TransactionType: domain.TransactionAdd, ActorID: 2}},
		{"unknown type", AdjustStockCommand{ItemID: 1, QuantityChange: 1, TransactionType: "transfer", ActorID: 2}},
		{"negative add", AdjustStockCommand{ItemID: 1, QuantityChange: -1, TransactionType: domain.TransactionAdd, ActorID: 2}},
		{"positive remove", AdjustStockCommand{ItemID: 1, QuantityChange: 1, TransactionType: domain.TransactionRemove, ActorID: 2}},
		{"missing item id", AdjustStockCommand{QuantityChange: 1, TransactionType: domain.TransactionAdd, ActorID: 2}},
	}
	for _, tc := range cases {
		if _, err := handler.Handle(context.Background(), tc.cmd); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestAdjustStock_ConcurrentRemovals(t *testing.T) {
	const stock = 20
	repo := newMockInventoryRepo()
	repo.Create(context.Background(), &domain.InventoryItem{ID: 1, Quantity: stock})
	handler := NewAdjustStockHandler(repo, nil)

	var wg sync.WaitGroup
	errs := make(chan error, stock+1)
	for i := 0; i < stock+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(context.Background(), AdjustStockCommand{
				ItemID:          1,
				QuantityChange:  -1,
				TransactionType: domain.TransactionRemove,
				ActorID:         2,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != stock || insufficient != 1 {
		t.Errorf("expected %d successes and 1 insufficient, got %d/%d", stock, successes, insufficient)
	}

	item, _ := repo.FindByID(context.Background(), 1)
	if item.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", item.Quantity)
	}
}

// Replaying the ledger reproduces the current quantity.
func TestAdjustStock_LedgerReplay(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.Create(context.Background(), &domain.InventoryItem{ID: 1, Quantity: 0})
	handler := NewAdjustStockHandler(repo, nil)

	deltas := []struct {
		change int
		txType string
	}{
		{10, domain.TransactionAdd},
		{-4, domain.TransactionRemove},
		{3, domain.TransactionAdjust},
		{-2, domain.TransactionRemove},
	}
	for _, d := range deltas {
		if _, err := handler.Handle(context.Background(), AdjustStockCommand{
			ItemID: 1, QuantityChange: d.change, TransactionType: d.txType, ActorID: 2,
		}); err != nil {
			t.Fatalf("adjustment %+v failed: %v", d, err)
		}
	}

	txs, _ := repo.FindTransactions(context.Background(), 1, 0, 0)
	var sum int
	for _, tx := range txs {
		sum += tx.QuantityChange
	}

	item, _ := repo.FindByID(context.Background(), 1)
	if sum != item.Quantity {
		t.Errorf("ledger replay gives %d, item holds %d", sum, item.Quantity)
	}
	if item.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", item.Quantity)
	}
}
