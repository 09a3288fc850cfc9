//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/inventory/delivery/http"
	"github.com/stocktrail/stocktrail/internal/inventory/domain"
	"github.com/stocktrail/stocktrail/internal/inventory/repository"
	"github.com/stocktrail/stocktrail/internal/inventory/usecase/command"
)

// ProvideInventoryRepository provides the traced inventory repository.
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewTracingInventoryRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies.
func InitializeHTTPHandler(db *gorm.DB, publisher command.StockEventPublisher) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
