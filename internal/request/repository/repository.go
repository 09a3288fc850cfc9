package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	inventorydomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	inventoryrepo "github.com/stocktrail/stocktrail/internal/inventory/repository"
	"github.com/stocktrail/stocktrail/internal/request/domain"
)

// GormRequestRepository implements domain.RequestRepository on PostgreSQL.
// It shares the database with the inventory ledger so an approval's status
// flip and stock deduction commit as one transaction.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockRequest{})
}

func (r *GormRequestRepository) Create(ctx context.Context, request *domain.StockRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *GormRequestRepository) FindByID(ctx context.Context, id uint) (*domain.StockRequest, error) {
	var request domain.StockRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormRequestRepository) FindAll(ctx context.Context, filter domain.RequestFilter) ([]domain.StockRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RequestedBy != nil {
		query = query.Where("requested_by = ?", *filter.RequestedBy)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var requests []domain.StockRequest
	err := query.Find(&requests).Error
	return requests, err
}

func (r *GormRequestRepository) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.StockRequest{}).
		Where("status = ?", domain.StatusPending).
		Count(&count).Error
	return count, err
}

// Process flips a pending request to its terminal state. The conditional
// UPDATE on status claims the request; a zero affected-row count after the
// row was seen means another admin got there first. An approval then runs
// the ledger deduction inside the same transaction, so InsufficientStock
// rolls everything back and the request stays pending.
func (r *GormRequestRepository) Process(ctx context.Context, requestID, adminID uint, decision, notes string) (*domain.StockRequest, error) {
	var processed domain.StockRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request domain.StockRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequestNotFound
			}
			return err
		}
		if request.Status != domain.StatusPending {
			return domain.ErrAlreadyProcessed
		}

		now := time.Now()
		res := tx.Model(&domain.StockRequest{}).
			Where("id = ? AND status = ?", requestID, domain.StatusPending).
			Updates(map[string]interface{}{
				"status":           decision,
				"processed_by":     adminID,
				"processing_notes": notes,
				"processed_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyProcessed
		}

		if decision == domain.StatusApproved {
			_, err := inventoryrepo.ApplyDeltaTx(tx, request.ItemID, -request.Quantity,
				inventorydomain.TransactionRemove, adminID, notes)
			if err != nil {
				return err
			}
		}

		if err := tx.First(&processed, requestID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &processed, nil
}
