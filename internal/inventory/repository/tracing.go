package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository wraps GormInventoryRepository with spans around
// every store round-trip.
type TracingInventoryRepository struct {
	*GormInventoryRepository
}

// NewTracingInventoryRepository creates a new repository with tracing.
func NewTracingInventoryRepository(db *gorm.DB) *TracingInventoryRepository {
	return &TracingInventoryRepository{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

func (r *TracingInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.product_name", item.ProductName),
			attribute.Int("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	if err := r.GormInventoryRepository.Create(ctx, item); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

func (r *TracingInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("item.id", int(id))),
	)
	defer span.End()

	item, err := r.GormInventoryRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return item, nil
}

func (r *TracingInventoryRepository) FindLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindLowStock")
	defer span.End()

	items, err := r.GormInventoryRepository.FindLowStock(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("item.low_stock_count", len(items)))
	return items, nil
}

func (r *TracingInventoryRepository) ApplyDelta(ctx context.Context, itemID uint, delta int, transactionType string, actorID uint, notes string) (*domain.DeltaResult, error) {
	ctx, span := tracer.Start(ctx, "repository.ApplyDelta",
		trace.WithAttributes(
			attribute.Int("item.id", int(itemID)),
			attribute.Int("delta", delta),
			attribute.String("transaction.type", transactionType),
		),
	)
	defer span.End()

	result, err := r.GormInventoryRepository.ApplyDelta(ctx, itemID, delta, transactionType, actorID, notes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("item.new_quantity", result.NewQuantity),
		attribute.Int("transaction.id", int(result.Transaction.ID)),
	)
	return result, nil
}

func (r *TracingInventoryRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("item.id", int(id))),
	)
	defer span.End()

	if err := r.GormInventoryRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
