package domain

import (
	"context"
	"errors"
	"time"
)

// Request statuses. A request leaves pending exactly once and the terminal
// states are final.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrRequestNotFound  = errors.New("stock request not found")
	ErrAlreadyProcessed = errors.New("stock request already processed")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrInvalidQuantity  = errors.New("requested quantity must be greater than 0")
	ErrAccessDenied     = errors.New("access denied")
)

// ValidDecision reports whether s is a terminal disposition.
func ValidDecision(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// StockRequest is a staff ask to draw down stock, subject to admin approval.
// Requests are never deleted; together with stock transactions they form the
// audit trail.
type StockRequest struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	RequestCode     string     `json:"request_code" gorm:"not null;uniqueIndex"`
	ItemID          uint       `json:"item_id" gorm:"not null;index"`
	RequestedBy     uint       `json:"requested_by" gorm:"not null;index"`
	Quantity        int        `json:"quantity" gorm:"not null"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status" gorm:"not null;default:'pending';index"`
	ProcessedBy     *uint      `json:"processed_by"`
	ProcessingNotes string     `json:"processing_notes"`
	ProcessedAt     *time.Time `json:"processed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (StockRequest) TableName() string {
	return "stock_requests"
}

// IsPending reports whether the request still awaits a decision.
func (r *StockRequest) IsPending() bool {
	return r.Status == StatusPending
}

// RequestFilter narrows FindAll.
type RequestFilter struct {
	Status      string
	RequestedBy *uint
	Limit       int
	Offset      int
}

// RequestRepository defines the contract for stock request data access.
//
// Process owns the whole terminal transition: the status flip uses a
// conditional update on the pending state, and an approval's stock deduction
// with its ledger entry commits in the same database transaction or not at
// all. Two concurrent Process calls on one request see exactly one success
// and one ErrAlreadyProcessed.
type RequestRepository interface {
	Create(ctx context.Context, request *StockRequest) error
	FindByID(ctx context.Context, id uint) (*StockRequest, error)
	FindAll(ctx context.Context, filter RequestFilter) ([]StockRequest, error)
	PendingCount(ctx context.Context) (int64, error)
	Process(ctx context.Context, requestID, adminID uint, decision, notes string) (*StockRequest, error)
}
