package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: testLogger})

	e := newTestEcho()
	e.GET("/api/v1/session", h.Open)
	e.DELETE("/api/v1/session", h.Close)
	e.POST("/api/v1/newsletter/dismiss", h.DismissPrompt)

	t.Run("open", func(t *testing.T) {
		sessionUC.EXPECT().Open(mock.Anything, testSessionID).Return(&usecase.SessionView{
			SessionID:        testSessionID,
			Cart:             cartViewWith(1),
			NewsletterPrompt: true,
			Preferences:      entity.Preferences{Theme: entity.ThemeDark, Language: entity.LanguageFrench},
		}, nil).Once()

		rec, env := doRequest(t, e, http.MethodGet, "/api/v1/session", "")

		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeData[sessionResponse](t, env)
		assert.Equal(t, testSessionID, view.SessionID)
		assert.True(t, view.NewsletterPrompt)
		assert.Equal(t, 1, view.Cart.TotalItems)
		assert.Equal(t, entity.ThemeDark, view.Preferences.Theme)
		assert.Equal(t, testSessionID, rec.Header().Get("X-Session-Id"))
	})

	t.Run("close", func(t *testing.T) {
		sessionUC.EXPECT().Close(mock.Anything, testSessionID).Return(nil).Once()

		rec, _ := doRequest(t, e, http.MethodDelete, "/api/v1/session", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("dismiss prompt", func(t *testing.T) {
		sessionUC.EXPECT().DismissPrompt(mock.Anything, testSessionID).Return(nil).Once()

		rec, _ := doRequest(t, e, http.MethodPost, "/api/v1/newsletter/dismiss", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
