package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/request/domain"
)

var tracer = otel.Tracer("request-repository")

// TracingRequestRepository wraps GormRequestRepository with spans around the
// lifecycle operations.
type TracingRequestRepository struct {
	*GormRequestRepository
}

// NewTracingRequestRepository creates a new repository with tracing.
func NewTracingRequestRepository(db *gorm.DB) *TracingRequestRepository {
	return &TracingRequestRepository{
		GormRequestRepository: NewGormRequestRepository(db),
	}
}

func (r *TracingRequestRepository) Create(ctx context.Context, request *domain.StockRequest) error {
	ctx, span := tracer.Start(ctx, "repository.CreateRequest",
		trace.WithAttributes(
			attribute.Int("request.item_id", int(request.ItemID)),
			attribute.Int("request.quantity", request.Quantity),
		),
	)
	defer span.End()

	if err := r.GormRequestRepository.Create(ctx, request); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("request.id", int(request.ID)))
	return nil
}

func (r *TracingRequestRepository) Process(ctx context.Context, requestID, adminID uint, decision, notes string) (*domain.StockRequest, error) {
	ctx, span := tracer.Start(ctx, "repository.ProcessRequest",
		trace.WithAttributes(
			attribute.Int("request.id", int(requestID)),
			attribute.String("request.decision", decision),
		),
	)
	defer span.End()

	request, err := r.GormRequestRepository.Process(ctx, requestID, adminID, decision, notes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("request.status", request.Status))
	return request, nil
}
