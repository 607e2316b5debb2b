package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/storage"

	"github.com/shopspring/decimal"
	"gocloud.dev/blob/memblob"
)

const testKeyPrefix = "test-"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *cart.Engine {
	return cart.NewEngine(cart.DefaultPricing())
}

func newMemStore(t *testing.T) repository.KeyValueStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return storage.NewBlobStore(bucket)
}

// newTestRegistry uses an hour-long prompt delay unless the test cares about the timer.
func newTestRegistry(t *testing.T, store repository.KeyValueStore, delay time.Duration) *SessionRegistry {
	t.Helper()

	if delay == 0 {
		delay = time.Hour
	}
	registry := NewSessionRegistry(testEngine(), store, testKeyPrefix, delay, testLogger())
	t.Cleanup(registry.Shutdown)

	return registry
}

func testProduct(id, price string) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.RequireFromString(price),
		Category: "Tops",
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Black", "White"},
		InStock:  true,
	}
}
