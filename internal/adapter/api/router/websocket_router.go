package router

import (
	"patronpoint/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupWebSocketRouter registers the live dashboard feed. The handler does
// its own token verification from the query string.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws/dashboard", wsHandler.HandleDashboard)
}
