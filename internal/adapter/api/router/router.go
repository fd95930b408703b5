package router

import (
	"patronpoint/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupBusinessRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware)
	SetupLookupRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
