package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service  usecase.CartUsecase
	registry *SessionRegistry
	catalog  *mockRepo.MockCatalogRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().Products().Return([]entity.Product{
		testProduct("p1", "60"),
		testProduct("p2", "45"),
	}).Maybe()

	registry := newTestRegistry(t, newMemStore(t), 0)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			Registry: registry,
			Catalog:  catalog,
			Logger:   testLogger(),
		}),
		registry: registry,
		catalog:  catalog,
	}
}

func TestCartService_AddLine_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	view, err := fx.service.AddLine(ctx, "s1", usecase.AddLineInput{ProductID: "p1", Size: "M", Color: "Black", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)

	view, err = fx.service.AddLine(ctx, "s1", usecase.AddLineInput{ProductID: "p1", Size: "M", Color: "Black", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.State.Lines, 1)
	assert.Equal(t, 3, view.State.Lines[0].Quantity)
	assert.Equal(t, "p1-M-Black", view.State.Lines[0].ID)
}

func TestCartService_AddLine_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.AddLineInput
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "zero quantity",
			input:   usecase.AddLineInput{ProductID: "p1", Size: "M", Color: "Black", Quantity: 0},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "unknown product",
			input:   usecase.AddLineInput{ProductID: "nope", Size: "M", Color: "Black", Quantity: 1},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:    "size not offered",
			input:   usecase.AddLineInput{ProductID: "p1", Size: "XXL", Color: "Black", Quantity: 1},
			wantErr: domainerrors.ErrInvalidVariant,
		},
		{
			name:    "color not offered",
			input:   usecase.AddLineInput{ProductID: "p1", Size: "M", Color: "Purple", Quantity: 1},
			wantErr: domainerrors.ErrInvalidVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			_, err := fx.service.AddLine(context.Background(), "s1", tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantErr.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddLine(ctx, "s1", usecase.AddLineInput{ProductID: "p1", Size: "M", Color: "Black", Quantity: 1})
	require.NoError(t, err)
	_, err = fx.service.AddLine(ctx, "s1", usecase.AddLineInput{ProductID: "p2", Size: "S", Color: "White", Quantity: 1})
	require.NoError(t, err)

	view, err := fx.service.SetQuantity(ctx, "s1", "p1-M-Black", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, view.TotalItems)

	view, err = fx.service.SetQuantity(ctx, "s1", "p1-M-Black", 0)
	require.NoError(t, err)
	require.Len(t, view.State.Lines, 1)
	assert.Equal(t, "p2-S-White", view.State.Lines[0].ID)

	view, err = fx.service.RemoveLine(ctx, "s1", "missing")
	require.NoError(t, err)
	assert.Len(t, view.State.Lines, 1)

	view, err = fx.service.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, view.State.Lines)
	assert.True(t, view.State.Summary.Total.IsZero())
}

func TestCartService_ToggleVisibility(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	view, err := fx.service.ToggleVisibility(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, view.State.Open)

	view, err = fx.service.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, view.State.Open)
}

func TestCartService_MissingSession(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Get(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)
}
