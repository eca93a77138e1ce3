// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mutualaid/internal/delivery/http/middleware"
	"mutualaid/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler      *handler.RequestHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	UserHandler         *handler.UserHandler
	IdentityMiddleware  *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler      *handler.RequestHandler
	reviewHandler       *handler.ReviewHandler
	notificationHandler *handler.NotificationHandler
	userHandler         *handler.UserHandler
	identityMiddleware  *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler:      params.RequestHandler,
		reviewHandler:       params.ReviewHandler,
		notificationHandler: params.NotificationHandler,
		userHandler:         params.UserHandler,
		identityMiddleware:  params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Request lifecycle routes
	requestGroup := e.Group("/requests")
	requestGroup.Use(r.identityMiddleware.Authenticate)
	{
		requestGroup.POST("", r.requestHandler.CreateRequest)
		requestGroup.GET("", r.requestHandler.GetActiveRequests)
		requestGroup.GET("/filter", r.requestHandler.FilterRequests)
		requestGroup.GET("/mine", r.requestHandler.GetMyRequests)
		requestGroup.GET("/mine/archived", r.requestHandler.GetArchivedRequests)
		requestGroup.GET("/mine/completed", r.requestHandler.GetCompletedRequests)
		requestGroup.GET("/helped", r.requestHandler.GetHelpedRequests)
		requestGroup.GET("/helping", r.requestHandler.GetActiveHelpRequests)
		requestGroup.GET("/helped/completed", r.requestHandler.GetCompletedHelpRequests)
		requestGroup.GET("/:id", r.requestHandler.GetRequest)
		requestGroup.POST("/:id/respond", r.requestHandler.RespondToRequest)
		requestGroup.POST("/:id/complete", r.requestHandler.CompleteHelp)
		requestGroup.POST("/:id/confirm-help", r.requestHandler.ConfirmHelpCompletion)
		requestGroup.POST("/:id/reject-help", r.requestHandler.RejectHelpCompletion)
		requestGroup.POST("/:id/cancel-help", r.requestHandler.CancelHelp)
		requestGroup.POST("/:id/archive", r.requestHandler.ArchiveRequest)
		requestGroup.PATCH("/:id/status", r.requestHandler.UpdateRequestStatus)
		requestGroup.DELETE("/:id", r.requestHandler.DeleteRequest)
	}

	// Review routes
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.identityMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.reviewHandler.AddReview)
		reviewGroup.GET("/mine", r.reviewHandler.GetMyReviews)
		reviewGroup.GET("/helper/:id", r.reviewHandler.GetReviewsForHelper)
		reviewGroup.GET("/request/:id", r.reviewHandler.GetReviewsForRequest)
	}

	// Notification feed routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.identityMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.GetNotifications)
		notificationGroup.GET("/action-needed", r.notificationHandler.GetActionNeededNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkNotificationRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	// User profile routes
	userGroup := e.Group("/users")
	userGroup.Use(r.identityMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMyProfile)
		userGroup.GET("/:id", r.userHandler.GetProfile)
	}
}
