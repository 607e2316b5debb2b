// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	SessionHandler    *handler.SessionHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	NewsletterHandler *handler.NewsletterHandler
	PreferenceHandler *handler.PreferenceHandler
	AccountHandler    *handler.AccountHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	sessionHandler    *handler.SessionHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	newsletterHandler *handler.NewsletterHandler
	preferenceHandler *handler.PreferenceHandler
	accountHandler    *handler.AccountHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		sessionHandler:    params.SessionHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		newsletterHandler: params.NewsletterHandler,
		preferenceHandler: params.PreferenceHandler,
		accountHandler:    params.AccountHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The session middleware is installed globally by the server, so every /api/v1 route sees a session ID.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	apiV1 := e.Group("/api/v1")

	// Catalog routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/facets", r.catalogHandler.Facets)
		productsGroup.GET("/featured", r.catalogHandler.Featured)
		productsGroup.GET("/new", r.catalogHandler.NewArrivals)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.catalogHandler.ProductQR)
	}

	blogGroup := apiV1.Group("/blog")
	{
		blogGroup.GET("", r.catalogHandler.ListPosts)
		blogGroup.GET("/categories", r.catalogHandler.BlogCategories)
	}

	// Session routes
	apiV1.GET("/session", r.sessionHandler.Open)
	apiV1.DELETE("/session", r.sessionHandler.Close)

	// Cart routes
	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/lines", r.cartHandler.AddLine)
		cartGroup.PUT("/lines/:lineId", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/lines/:lineId", r.cartHandler.RemoveLine)
		cartGroup.POST("/toggle", r.cartHandler.ToggleVisibility)
	}

	apiV1.POST("/checkout", r.checkoutHandler.PlaceOrder)

	newsletterGroup := apiV1.Group("/newsletter")
	{
		newsletterGroup.POST("", r.newsletterHandler.Subscribe)
		newsletterGroup.POST("/dismiss", r.sessionHandler.DismissPrompt)
	}

	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.Get)
		preferencesGroup.POST("/theme/toggle", r.preferenceHandler.ToggleTheme)
		preferencesGroup.PUT("/language", r.preferenceHandler.SetLanguage)
	}

	// Account routes that require authentication
	accountGroup := apiV1.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.Profile)
	}
}
