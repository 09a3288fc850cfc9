//go:build wireinject
// +build wireinject

package request

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/request/delivery/http"
	"github.com/stocktrail/stocktrail/internal/request/domain"
	"github.com/stocktrail/stocktrail/internal/request/repository"
	"github.com/stocktrail/stocktrail/internal/request/usecase/command"
)

// ProvideRequestRepository provides the traced request repository.
func ProvideRequestRepository(db *gorm.DB) domain.RequestRepository {
	return repository.NewTracingRequestRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideRequestRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies.
func InitializeHTTPHandler(db *gorm.DB, items command.ItemLookup, publisher command.RequestEventPublisher) (*http.RequestHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewRequestHandler,
	)
	return nil, nil
}
