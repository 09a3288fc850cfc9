package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Item statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Transaction types
const (
	TransactionAdd    = "add"
	TransactionRemove = "remove"
	TransactionAdjust = "adjust"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemInUse         = errors.New("inventory item is referenced by requests or transactions")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
)

// ValidTransactionType reports whether t is one of the ledger transaction types.
func ValidTransactionType(t string) bool {
	return t == TransactionAdd || t == TransactionRemove || t == TransactionAdjust
}

// InventoryItem is the single owner of an item's on-hand quantity. The
// quantity column is only ever changed through ApplyDelta, which pairs every
// change with exactly one StockTransaction.
type InventoryItem struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ProductName   string         `json:"product_name" gorm:"not null;index"`
	ProductTypeID *uint          `json:"product_type_id" gorm:"index"`
	Description   string         `json:"description"`
	UnitPrice     float64        `json:"unit_price" gorm:"not null;check:unit_price >= 0"`
	Quantity      int            `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	ReorderLevel  int            `json:"reorder_level" gorm:"not null;default:0"`
	UnitOfMeasure string         `json:"unit_of_measure"`
	Status        string         `json:"status" gorm:"not null;default:'active'"`
	CreatedBy     uint           `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item sits at or below its reorder level.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// StockTransaction is one immutable ledger entry. Replaying all entries for
// an item in creation order reproduces its current quantity.
type StockTransaction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ItemID          uint      `json:"item_id" gorm:"not null;index"`
	QuantityChange  int       `json:"quantity_change" gorm:"not null"`
	TransactionType string    `json:"transaction_type" gorm:"not null"`
	PerformedBy     uint      `json:"performed_by" gorm:"not null"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// DeltaResult is what ApplyDelta reports back: the quantity after the change
// and the ledger entry that recorded it.
type DeltaResult struct {
	NewQuantity int               `json:"new_quantity"`
	Transaction *StockTransaction `json:"transaction"`
}

// ItemFilter narrows ListItems.
type ItemFilter struct {
	Status        string
	ProductTypeID *uint
	Limit         int
	Offset        int
}

// InventoryRepository defines the contract for item and ledger data access.
// ApplyDelta must serialize with itself per item: the resulting quantity may
// never go negative and no concurrent update may be lost.
type InventoryRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	FindByID(ctx context.Context, id uint) (*InventoryItem, error)
	FindAll(ctx context.Context, filter ItemFilter) ([]InventoryItem, error)
	FindLowStock(ctx context.Context) ([]InventoryItem, error)
	Update(ctx context.Context, item *InventoryItem) error
	Delete(ctx context.Context, id uint) error
	ApplyDelta(ctx context.Context, itemID uint, delta int, transactionType string, actorID uint, notes string) (*DeltaResult, error)
	FindTransactions(ctx context.Context, itemID uint, limit, offset int) ([]StockTransaction, error)
}
