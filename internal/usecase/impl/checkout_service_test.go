package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	registry  *SessionRegistry
	publisher *mockSvc.MockEventPublisher
	txManager *mockRepo.MockTransactionManager
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	registry := newTestRegistry(t, newMemStore(t), 0)
	publisher := mockSvc.NewMockEventPublisher(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	return checkoutServiceFixtures{
		service: NewCheckoutService(CheckoutServiceParams{
			Registry:  registry,
			Publisher: publisher,
			TxManager: txManager,
			Logger:    testLogger(),
		}),
		registry:  registry,
		publisher: publisher,
		txManager: txManager,
	}
}

func checkoutInput(newsletter bool) usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Email: "Jane@Example.com",
		Contact: entity.ShippingContact{
			FirstName: "Jane",
			LastName:  "Doe",
			Address:   "1 Main St",
			City:      "Springfield",
			State:     "IL",
			ZipCode:   "62701",
			Phone:     "555-0100",
		},
		CardNumber: "4242424242424242",
		ExpiryDate: "12/30",
		CVV:        "123",
		NameOnCard: "Jane Doe",
		Newsletter: newsletter,
	}
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.registry.Apply(ctx, "s1", cart.AddLine{Product: testProduct("p1", "60"), Size: "M", Color: "Black", Quantity: 3})
	require.NoError(t, err)

	var published *service.OrderPlacedEvent
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(_ context.Context, event *service.OrderPlacedEvent) {
			published = event
		}).
		Return(nil).
		Once()

	order, err := fx.service.PlaceOrder(ctx, "s1", checkoutInput(false))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Number, "AX-"))
	assert.Len(t, order.Number, 11)
	assert.Equal(t, "jane@example.com", order.Email)
	assert.Equal(t, entity.DefaultNewsletterCountry, order.Contact.Country)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "194.4", order.Summary.Total.String())

	require.NotNil(t, published)
	assert.Equal(t, order.Number, published.OrderNumber)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.Equal(t, "AX-"+strings.ToUpper(order.ID.String()[:8]), order.Number)
	assert.Equal(t, 3, published.ItemCount)
	assert.Equal(t, "194.40", published.Total)
	assert.NotContains(t, strings.ToLower(published.Email+published.Country), "4242")

	state, _, err := fx.registry.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, state.Lines)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.PlaceOrder(context.Background(), "s1", checkoutInput(false))

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	fx.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_PublishFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.registry.Apply(ctx, "s1", cart.AddLine{Product: testProduct("p1", "60"), Size: "M", Color: "Black", Quantity: 1})
	require.NoError(t, err)

	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.Anything).
		Return(errors.New("topic not found"))

	_, err = fx.service.PlaceOrder(ctx, "s1", checkoutInput(false))
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)

	state, _, err := fx.registry.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, state.Lines, 1)
}

func TestCheckoutService_PlaceOrder_NewsletterAlreadySubscribed(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.registry.Apply(ctx, "s1", cart.AddLine{Product: testProduct("p1", "60"), Size: "M", Color: "Black", Quantity: 1})
	require.NoError(t, err)

	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

			mockFactory.EXPECT().NewsletterRepo().Return(mockNewsletterRepo)
			mockNewsletterRepo.EXPECT().
				FindByEmail(ctx, "jane@example.com").
				Return(&entity.NewsletterSubscription{Email: "jane@example.com"}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, "s1", checkoutInput(true))

	require.NoError(t, err)
	assert.NotEmpty(t, order.Number)
}

func TestCheckoutService_PlaceOrder_NewsletterSubscribes(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.registry.Apply(ctx, "s1", cart.AddLine{Product: testProduct("p1", "60"), Size: "M", Color: "Black", Quantity: 1})
	require.NoError(t, err)

	input := checkoutInput(true)
	input.Contact.Country = "Kenya"

	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

			mockFactory.EXPECT().NewsletterRepo().Return(mockNewsletterRepo)
			mockNewsletterRepo.EXPECT().
				FindByEmail(ctx, "jane@example.com").
				Return(nil, repository.ErrSubscriptionNotFound)
			mockNewsletterRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(sub *entity.NewsletterSubscription) bool {
					return sub.Email == "jane@example.com" && sub.Country == "Other"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	_, err = fx.service.PlaceOrder(ctx, "s1", input)

	require.NoError(t, err)
}
