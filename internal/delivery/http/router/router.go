// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"statistics/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatisticsHandler *handler.StatisticsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	statisticsHandler *handler.StatisticsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		statisticsHandler: params.StatisticsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Remark statistics routes
	remarksGroup := e.Group("/remarks")
	{
		remarksGroup.GET("", r.statisticsHandler.ListRemarks)
		remarksGroup.GET("/geojson", r.statisticsHandler.ListRemarkFeatures)
		remarksGroup.GET("/:remarkId/state", r.statisticsHandler.GetRemarkState)
	}
}
