package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrderID = "1a2b3c4d-0000-4000-8000-000000000001"

func testOrderEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		OrderID:     testOrderID,
		OrderNumber: "AX-1A2B3C4D",
		Email:       "jane@example.com",
		ItemCount:   3,
		Total:       "194.40",
		Country:     "United States",
		PlacedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func testFulfilmentConfig() *config.Config {
	return &config.Config{Storage: &config.StorageConfig{KeyPrefix: testKeyPrefix}}
}

func TestFulfilmentService_RecordOrderIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	srv := NewFulfilmentService(FulfilmentServiceParams{Config: testFulfilmentConfig(), Store: store, Logger: testLogger()})

	require.NoError(t, srv.RecordOrder(ctx, testOrderEvent()))

	raw, err := store.Get(ctx, testKeyPrefix+"order:"+testOrderID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":"194.40"`)

	// A redelivery leaves the first record in place.
	again := testOrderEvent()
	again.Total = "0.00"
	require.NoError(t, srv.RecordOrder(ctx, again))

	raw, err = store.Get(ctx, testKeyPrefix+"order:"+testOrderID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":"194.40"`)
}

func TestFulfilmentService_RecordOrderStorageFailure(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockKeyValueStore(t)
	srv := NewFulfilmentService(FulfilmentServiceParams{Config: testFulfilmentConfig(), Store: store, Logger: testLogger()})

	store.EXPECT().Get(ctx, testKeyPrefix+"order:"+testOrderID).Return(nil, repository.ErrKeyNotFound)
	store.EXPECT().Set(ctx, testKeyPrefix+"order:"+testOrderID, mock.Anything).Return(errors.New("unavailable"))

	err := srv.RecordOrder(ctx, testOrderEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestFulfilmentService_RecordOrderRequiresOrderID(t *testing.T) {
	srv := NewFulfilmentService(FulfilmentServiceParams{
		Config: testFulfilmentConfig(),
		Store:  mockRepo.NewMockKeyValueStore(t),
		Logger: testLogger(),
	})

	noID := testOrderEvent()
	noID.OrderID = ""
	badID := testOrderEvent()
	badID.OrderID = "AX-1A2B3C4D"

	for _, event := range []*service.OrderPlacedEvent{nil, {}, noID, badID} {
		var appErr domainerrors.AppError
		require.ErrorAs(t, srv.RecordOrder(context.Background(), event), &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestFulfilmentService_SameDisplayNumberDifferentOrders(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	srv := NewFulfilmentService(FulfilmentServiceParams{Config: testFulfilmentConfig(), Store: store, Logger: testLogger()})

	first := testOrderEvent()
	second := testOrderEvent()
	second.OrderID = "1a2b3c4d-0000-4000-8000-000000000002"
	second.Total = "20.00"

	require.NoError(t, srv.RecordOrder(ctx, first))
	require.NoError(t, srv.RecordOrder(ctx, second))

	raw, err := store.Get(ctx, testKeyPrefix+"order:"+first.OrderID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":"194.40"`)

	raw, err = store.Get(ctx, testKeyPrefix+"order:"+second.OrderID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":"20.00"`)
}
