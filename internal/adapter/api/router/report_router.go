package router

import (
	"patronpoint/internal/adapter/api/handler"
	"patronpoint/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.POST("", reportHandler.SubmitReport)
	reports.GET("", reportHandler.GetMyReports)
	reports.GET("/cooldown", reportHandler.CheckCooldown)
	reports.GET("/reasons", reportHandler.GetReasonCatalog)
}
