package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money leaves the API rounded to cents; the engine keeps full precision.
const moneyPlaces = 2

type summaryResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func newSummaryResponse(s entity.OrderSummary) summaryResponse {
	return summaryResponse{
		Subtotal: s.Subtotal.Round(moneyPlaces),
		Shipping: s.Shipping.Round(moneyPlaces),
		Tax:      s.Tax.Round(moneyPlaces),
		Total:    s.Total.Round(moneyPlaces),
	}
}

type cartResponse struct {
	Items        []entity.CartLineItem `json:"items"`
	IsOpen       bool                  `json:"isOpen"`
	OrderSummary summaryResponse       `json:"orderSummary"`
	TotalItems   int                   `json:"totalItems"`
}

func newCartResponse(view *usecase.CartView) cartResponse {
	items := view.State.Lines
	if items == nil {
		items = []entity.CartLineItem{}
	}

	return cartResponse{
		Items:        items,
		IsOpen:       view.State.Open,
		OrderSummary: newSummaryResponse(view.State.Summary),
		TotalItems:   view.TotalItems,
	}
}

type sessionResponse struct {
	SessionID        string             `json:"sessionId"`
	Cart             cartResponse       `json:"cart"`
	NewsletterPrompt bool               `json:"newsletterPrompt"`
	Preferences      entity.Preferences `json:"preferences"`
}

type productDetailResponse struct {
	Product         entity.Product `json:"product"`
	DiscountPercent int            `json:"discountPercent"`
	MaxQuantity     int            `json:"maxQuantity"`
}

type orderResponse struct {
	OrderID      string                 `json:"orderId"`
	OrderNumber  string                 `json:"orderNumber"`
	Email        string                 `json:"email"`
	Items        []entity.CartLineItem  `json:"items"`
	OrderSummary summaryResponse        `json:"orderSummary"`
	Shipping     entity.ShippingContact `json:"shipping"`
	PlacedAt     string                 `json:"placedAt"`
}

func newOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		OrderID:      order.ID.String(),
		OrderNumber:  order.Number,
		Email:        order.Email,
		Items:        order.Lines,
		OrderSummary: newSummaryResponse(order.Summary),
		Shipping:     order.Contact,
		PlacedAt:     order.PlacedAt.Format(time.RFC3339),
	}
}

type languageOption struct {
	Code entity.Language `json:"code"`
	Name string          `json:"name"`
}

type preferencesResponse struct {
	entity.Preferences
	Languages []languageOption `json:"languages"`
}

func newPreferencesResponse(prefs entity.Preferences) preferencesResponse {
	languages := make([]languageOption, 0, len(entity.SupportedLanguages))
	for _, code := range entity.SupportedLanguages {
		languages = append(languages, languageOption{Code: code, Name: entity.LanguageNames[code]})
	}

	return preferencesResponse{Preferences: prefs, Languages: languages}
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken,omitempty"`
	Account      *entity.Account `json:"account"`
}
