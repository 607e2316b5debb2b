package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	DriverBlob     = "blob"
	DriverPostgres = "postgres"
)

// Params defines the dependencies for the key-value store provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewKeyValueStore selects the backend named by storage.driver.
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage

	switch cfg.Driver {
	case DriverPostgres:
		if params.DB == nil {
			return nil, errors.New("storage driver postgres requires a database connection")
		}
		params.Logger.Info("Using Postgres key-value store")

		return postgres.NewKeyValueStore(params.DB), nil

	case DriverBlob, "":
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		bucket, store, err := OpenBlobStore(ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bucket.Close()
			},
		})
		params.Logger.Info("Using blob key-value store", slog.String("bucketUrl", cfg.BucketURL))

		return store, nil

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
