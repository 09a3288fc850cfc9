package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// Mock RequestRepository backed by an in-memory stock ledger so approval
// behaves like the real transactional Process.
type mockRequestRepo struct {
	mu       sync.Mutex
	requests map[uint]*domain.StockRequest
	stock    map[uint]int
	nextID   uint
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{
		requests: make(map[uint]*domain.StockRequest),
		stock:    make(map[uint]int),
		nextID:   1,
	}
}

func (m *mockRequestRepo) Create(ctx context.Context, request *domain.StockRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request.ID = m.nextID
	m.nextID++
	request.CreatedAt = time.Now()
	copied := *request
	m.requests[request.ID] = &copied
	return nil
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uint) (*domain.StockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (m *mockRequestRepo) FindAll(ctx context.Context, filter domain.RequestFilter) ([]domain.StockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.StockRequest
	for _, r := range m.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRequestRepo) PendingCount(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, r := range m.requests {
		if r.Status == domain.StatusPending {
			count++
		}
	}
	return count, nil
}

func (m *mockRequestRepo) Process(ctx context.Context, requestID, adminID uint, decision, notes string) (*domain.StockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	request, ok := m.requests[requestID]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if request.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}

	if decision == domain.StatusApproved {
		if m.stock[request.ItemID] < request.Quantity {
			return nil, inventorydomain.ErrInsufficientStock
		}
		m.stock[request.ItemID] -= request.Quantity
	}

	now := time.Now()
	request.Status = decision
	request.ProcessedBy = &adminID
	request.ProcessingNotes = notes
	request.ProcessedAt = &now

	copied := *request
	return &copied, nil
}

func seedPendingRequest(repo *mockRequestRepo, itemID uint, quantity, stock int) uint {
	repo.stock[itemID] = stock
	request := &domain.StockRequest{
		RequestCode: "REQ-test0001",
		ItemID:      itemID,
		RequestedBy: 7,
		Quantity:    quantity,
		Status:      domain.StatusPending,
	}
	repo.Create(context.Background(), request)
	return request.ID
}

func TestProcessRequest_Approve(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 3, 10)
	handler := NewProcessRequestHandler(repo, nil)

	request, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id,
		AdminID:   2,
		Decision:  domain.StatusApproved,
		Notes:     "go ahead",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if request.Status != domain.StatusApproved {
		t.Errorf("expected status approved, got %s", request.Status)
	}
	if request.ProcessedBy == nil || *request.ProcessedBy != 2 {
		t.Errorf("expected processed_by 2, got %v", request.ProcessedBy)
	}
	if request.ProcessedAt == nil {
		t.Error("expected processed_at to be set")
	}
	if repo.stock[1] != 7 {
		t.Errorf("expected stock 7 after approval, got %d", repo.stock[1])
	}
}

func TestProcessRequest_Reject(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 3, 10)
	handler := NewProcessRequestHandler(repo, nil)

	request, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id,
		AdminID:   2,
		Decision:  domain.StatusRejected,
		Notes:     "not needed",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if request.Status != domain.StatusRejected {
		t.Errorf("expected status rejected, got %s", request.Status)
	}
	if repo.stock[1] != 10 {
		t.Errorf("rejection must not touch stock, got %d", repo.stock[1])
	}
}

func TestProcessRequest_InsufficientStockLeavesPending(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 5, 2)
	handler := NewProcessRequestHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id,
		AdminID:   2,
		Decision:  domain.StatusApproved,
	})
	if !errors.Is(err, inventorydomain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got: %v", err)
	}

	request, _ := repo.FindByID(context.Background(), id)
	if request.Status != domain.StatusPending {
		t.Errorf("failed approval must leave request pending, got %s", request.Status)
	}
	if repo.stock[1] != 2 {
		t.Errorf("failed approval must not touch stock, got %d", repo.stock[1])
	}
}

func TestProcessRequest_AlreadyProcessed(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 3, 10)
	handler := NewProcessRequestHandler(repo, nil)

	if _, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id, AdminID: 2, Decision: domain.StatusApproved,
	}); err != nil {
		t.Fatalf("first process failed: %v", err)
	}

	_, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id, AdminID: 3, Decision: domain.StatusRejected,
	})
	if !errors.Is(err, domain.ErrAlreadyProcessed) {
		t.Errorf("expected ErrAlreadyProcessed, got: %v", err)
	}

	if repo.stock[1] != 7 {
		t.Errorf("second process must not touch stock, got %d", repo.stock[1])
	}
}

func TestProcessRequest_ConcurrentDecisions(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 3, 10)
	handler := NewProcessRequestHandler(repo, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(adminID uint) {
			defer wg.Done()
			_, err := handler.Handle(context.Background(), ProcessRequestCommand{
				RequestID: id, AdminID: adminID, Decision: domain.StatusApproved,
			})
			errs <- err
		}(uint(i + 2))
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrAlreadyProcessed):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Errorf("expected exactly one success and one conflict, got %d/%d", successes, conflicts)
	}
	if repo.stock[1] != 7 {
		t.Errorf("stock must be deducted exactly once, got %d", repo.stock[1])
	}
}

func TestProcessRequest_InvalidDecision(t *testing.T) {
	repo := newMockRequestRepo()
	id := seedPendingRequest(repo, 1, 3, 10)
	handler := NewProcessRequestHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: id, AdminID: 2, Decision: "cancelled",
	})
	if !errors.Is(err, domain.ErrInvalidDecision) {
		t.Errorf("expected ErrInvalidDecision, got: %v", err)
	}
}

func TestProcessRequest_NotFound(t *testing.T) {
	repo := newMockRequestRepo()
	handler := NewProcessRequestHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ProcessRequestCommand{
		RequestID: 999, AdminID: 2, Decision: domain.StatusApproved,
	})
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got: %v", err)
	}
}
