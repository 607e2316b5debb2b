package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNewsletterTestEcho(t *testing.T) (*mockUC.MockNewsletterUsecase, *mockUC.MockSessionUsecase, *echo.Echo) {
	newsletterUC := mockUC.NewMockNewsletterUsecase(t)
	sessionUC := mockUC.NewMockSessionUsecase(t)
	h := NewNewsletterHandler(NewsletterHandlerParams{
		NewsletterUC: newsletterUC,
		SessionUC:    sessionUC,
		Logger:       testLogger,
	})

	e := newTestEcho()
	e.POST("/api/v1/newsletter", h.Subscribe)

	return newsletterUC, sessionUC, e
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	input := usecase.SubscribeInput{Email: "jane@example.com", ZipCode: "62701", Country: "Canada", Consent: true}
	body := `{"email":"jane@example.com","zipCode":"62701","country":"Canada","consent":true}`

	t.Run("subscribes and hides the prompt", func(t *testing.T) {
		newsletterUC, sessionUC, e := newNewsletterTestEcho(t)
		newsletterUC.EXPECT().Subscribe(mock.Anything, input).Return(&entity.NewsletterSubscription{
			ID:      uuid.New(),
			Email:   input.Email,
			Country: input.Country,
			Consent: true,
		}, nil)
		sessionUC.EXPECT().DismissPrompt(mock.Anything, testSessionID).Return(nil)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/newsletter", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		sub := decodeData[entity.NewsletterSubscription](t, env)
		assert.Equal(t, "Canada", sub.Country)
	})

	t.Run("prompt failure does not fail the signup", func(t *testing.T) {
		newsletterUC, sessionUC, e := newNewsletterTestEcho(t)
		newsletterUC.EXPECT().Subscribe(mock.Anything, input).Return(&entity.NewsletterSubscription{Email: input.Email}, nil)
		sessionUC.EXPECT().DismissPrompt(mock.Anything, testSessionID).Return(errors.New("boom"))

		rec, _ := doRequest(t, e, http.MethodPost, "/api/v1/newsletter", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("already subscribed", func(t *testing.T) {
		newsletterUC, _, e := newNewsletterTestEcho(t)
		newsletterUC.EXPECT().Subscribe(mock.Anything, input).Return(nil, domainerrors.ErrAlreadySubscribed.WrapMessage(input.Email))

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/newsletter", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "ALREADY_SUBSCRIBED", env.Error.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, _, e := newNewsletterTestEcho(t)

		rec, _ := doRequest(t, e, http.MethodPost, "/api/v1/newsletter", `{"email":"jane"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
