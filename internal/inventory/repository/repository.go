package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

// GormInventoryRepository implements domain.InventoryRepository on PostgreSQL.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.InventoryItem{}, &domain.StockTransaction{})
}

func (r *GormInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	query := r.db.WithContext(ctx).Order("product_name")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductTypeID != nil {
		query = query.Where("product_type_id = ?", *filter.ProductTypeID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []domain.InventoryItem
	err := query.Find(&items).Error
	return items, err
}

// FindLowStock re-queries the store on every call and orders the snapshot by
// quantity ascending, most depleted first.
func (r *GormInventoryRepository) FindLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_level").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete refuses to remove an item that requests or ledger entries still
// reference, so the audit trail stays reconstructable.
func (r *GormInventoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item domain.InventoryItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		var requests int64
		if err := tx.Table("stock_requests").Where("item_id = ?", id).Count(&requests).Error; err != nil {
			return err
		}
		var transactions int64
		if err := tx.Model(&domain.StockTransaction{}).Where("item_id = ?", id).Count(&transactions).Error; err != nil {
			return err
		}
		if requests > 0 || transactions > 0 {
			return domain.ErrItemInUse
		}

		return tx.Delete(&domain.InventoryItem{}, id).Error
	})
}

// ApplyDelta runs the quantity change and its ledger entry in one database
// transaction.
func (r *GormInventoryRepository) ApplyDelta(ctx context.Context, itemID uint, delta int, transactionType string, actorID uint, notes string) (*domain.DeltaResult, error) {
	var result *domain.DeltaResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = ApplyDeltaTx(tx, itemID, delta, transactionType, actorID, notes)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyDeltaTx performs the atomic read-modify-write inside an existing
// transaction, so callers can tie a quantity change to their own state
// changes. The conditional UPDATE serializes concurrent deltas on the same
// row: the guard `quantity + delta >= 0` is evaluated under the row lock, and
// a zero affected-row count means the item is missing or the stock would go
// negative.
func ApplyDeltaTx(tx *gorm.DB, itemID uint, delta int, transactionType string, actorID uint, notes string) (*domain.DeltaResult, error) {
	res := tx.Model(&domain.InventoryItem{}).
		Where("id = ? AND quantity + ? >= 0", itemID, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&domain.InventoryItem{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.ErrInsufficientStock
	}

	var item domain.InventoryItem
	if err := tx.First(&item, itemID).Error; err != nil {
		return nil, err
	}

	entry := domain.StockTransaction{
		ItemID:          itemID,
		QuantityChange:  delta,
		TransactionType: transactionType,
		PerformedBy:     actorID,
		Notes:           notes,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &domain.DeltaResult{NewQuantity: item.Quantity, Transaction: &entry}, nil
}

func (r *GormInventoryRepository) FindTransactions(ctx context.Context, itemID uint, limit, offset int) ([]domain.StockTransaction, error) {
	query := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var entries []domain.StockTransaction
	err := query.Find(&entries).Error
	return entries, err
}
