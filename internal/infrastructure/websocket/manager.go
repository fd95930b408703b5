package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"patronpoint/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one connected dashboard session. A business may hold several
// concurrent sessions; each gets its own feed subscriptions.
type Client struct {
	BusinessID string
	Conn       *websocket.Conn
	Send       chan []byte

	cancel context.CancelFunc
}

// Manager tracks all active dashboard connections.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Info("Dashboard client connected: %s", client.BusinessID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					client.cancel()
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Dashboard client disconnected: %s", client.BusinessID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NewClient wires a connection to the manager. The returned context governs
// the client's feed subscriptions and is cancelled on unregister, so store
// listeners never outlive the view consuming them.
func (m *Manager) NewClient(parent context.Context, businessID string, conn *websocket.Conn) (*Client, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	client := &Client{
		BusinessID: businessID,
		Conn:       conn,
		Send:       make(chan []byte, 16),
		cancel:     cancel,
	}
	return client, ctx
}

// Push queues a frame for the client, dropping it if the session is gone.
func (c *Client) Push(message []byte) {
	defer func() {
		// Send channel may already be closed by Unregister
		recover()
	}()
	c.Send <- message
}

// ReadPump drains (and discards) inbound messages so close and pong frames
// are processed; the dashboard feed is one-directional.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Dashboard socket error: %v", err)
			}
			break
		}
	}
}

// WritePump pushes queued frames and keepalive pings to the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
