//go:build wireinject
// +build wireinject

package report

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stocktrail/stocktrail/internal/report/delivery/http"
	"github.com/stocktrail/stocktrail/internal/report/domain"
	"github.com/stocktrail/stocktrail/internal/report/repository"
)

// ProvideReportRepository provides the report repository.
func ProvideReportRepository(db *gorm.DB) domain.ReportRepository {
	return repository.NewGormReportRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReportRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies.
func InitializeHTTPHandler(db *gorm.DB, cache *redis.Client) (*http.ReportHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewReportHandler,
	)
	return nil, nil
}
