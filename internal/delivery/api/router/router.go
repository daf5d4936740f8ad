// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"spinrate/internal/delivery/api/middleware"
	"spinrate/internal/delivery/api/router/handler"
	deliverymiddleware "spinrate/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlbumHandler       *handler.AlbumHandler
	ReviewHandler      *handler.ReviewHandler
	WebhookHandler     *handler.WebhookHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	RateLimit          *deliverymiddleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	albumHandler       *handler.AlbumHandler
	reviewHandler      *handler.ReviewHandler
	webhookHandler     *handler.WebhookHandler
	identityMiddleware *middleware.IdentityMiddleware
	rateLimit          *deliverymiddleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		albumHandler:       params.AlbumHandler,
		reviewHandler:      params.ReviewHandler,
		webhookHandler:     params.WebhookHandler,
		identityMiddleware: params.IdentityMiddleware,
		rateLimit:          params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Identity provider webhooks (signature-verified, no session)
	e.POST("/api/auth/webhook", r.webhookHandler.HandleIdentityEvent)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.identityMiddleware.OptionalIdentity)

	albumsGroup := apiV1.Group("/albums")
	{
		albumsGroup.GET("", r.albumHandler.ListAlbums)
		albumsGroup.GET("/:id", r.albumHandler.GetAlbum)
		albumsGroup.GET("/:id/qr", r.albumHandler.GetAlbumQR)
		albumsGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		albumsGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview, r.rateLimit.Limit)
	}
}
