package router

import (
	"patronpoint/internal/adapter/api/handler"
	"patronpoint/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBusinessRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	businessHandler := handler.GetBusinessHandler()

	businesses := e.Group("/v1/businesses")
	businesses.Use(authMiddleware.Authenticate)

	businesses.GET("/me", businessHandler.GetProfile)
	businesses.PUT("/me", businessHandler.SaveProfile)
	businesses.GET("/me/performance", businessHandler.GetPerformance)

	leaderboard := e.Group("/v1/leaderboard")
	leaderboard.Use(authMiddleware.Authenticate)

	leaderboard.GET("", businessHandler.GetLeaderboard)
}
