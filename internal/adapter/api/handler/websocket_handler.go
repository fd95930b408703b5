package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "patronpoint/internal/infrastructure/websocket"
	"patronpoint/internal/usecase"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/logger"
)

// WebSocketHandler streams the live dashboard feeds: the caller's own
// submission history and the leaderboard, each replaced wholesale on every
// store change.
type WebSocketHandler struct {
	wsManager       *ws.Manager
	authClient      usecase.FirebaseAuthClient
	reportUseCase   *usecase.ReportUseCase
	businessUseCase *usecase.BusinessUseCase
	leaderboardSize int
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once the dashboard domain is fixed
	},
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	authClient usecase.FirebaseAuthClient,
	reportUseCase *usecase.ReportUseCase,
	businessUseCase *usecase.BusinessUseCase,
	leaderboardSize int,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:       wsManager,
		authClient:      authClient,
		reportUseCase:   reportUseCase,
		businessUseCase: businessUseCase,
		leaderboardSize: leaderboardSize,
	}
}

type feedFrame struct {
	Type string      `json:"type"` // "my_reports" or "leaderboard"
	Data interface{} `json:"data"`
}

func (h *WebSocketHandler) HandleDashboard(c echo.Context) error {
	// Browsers cannot set headers on websocket requests, so the token
	// arrives as a query parameter instead.
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("token query parameter is required", nil)
	}

	businessID, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client, ctx := h.wsManager.NewClient(context.Background(), businessID, conn)
	h.wsManager.Register <- client

	if err := h.startFeeds(ctx, client); err != nil {
		logger.Error("Failed to start dashboard feeds for %s: %v", businessID, err)
		h.wsManager.Unregister <- client
		// Neither pump has started yet, so nothing else will close the socket.
		conn.Close()
		return nil
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func (h *WebSocketHandler) startFeeds(ctx context.Context, client *ws.Client) error {
	reports, err := h.reportUseCase.StreamByBusiness(ctx, client.BusinessID)
	if err != nil {
		return err
	}

	leaderboard, err := h.businessUseCase.StreamLeaderboard(ctx, h.leaderboardSize)
	if err != nil {
		return err
	}

	go func() {
		for update := range reports {
			pushFrame(client, "my_reports", update)
		}
	}()

	go func() {
		for update := range leaderboard {
			pushFrame(client, "leaderboard", update)
		}
	}()

	return nil
}

func pushFrame(client *ws.Client, feedType string, data interface{}) {
	payload, err := json.Marshal(feedFrame{Type: feedType, Data: data})
	if err != nil {
		logger.Error("Failed to marshal %s frame: %v", feedType, err)
		return
	}
	client.Push(payload)
}
