package router

import (
	"patronpoint/internal/adapter/api/handler"
	"patronpoint/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLookupRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	lookupHandler := handler.GetLookupHandler()

	customers := e.Group("/v1/customers")
	customers.Use(authMiddleware.Authenticate)

	customers.GET("/lookup", lookupHandler.SearchCustomer)
}
