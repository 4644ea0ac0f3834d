package ws_chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_chat "github.com/humanbelnik/cinemind/core/internal/usecase/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 64 << 10
	requestTimeout = 60 * time.Second
)

//go:generate mockery --name=Chatter --output=./mocks --outpkg=mocks
type Chatter interface {
	Chat(ctx context.Context, auth model.AuthContext, req usecase_chat.Request) (usecase_chat.Response, error)
}

type errorReply struct {
	Error string `json:"error"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	auth model.AuthContext
}

// Hub tracks open chat connections.
type Hub struct {
	chat    Chatter
	logger  *slog.Logger
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(chat Chatter, opts ...HubOption) *Hub {
	h := &Hub{
		chat:    chat,
		logger:  slog.Default(),
		clients: make(map[*Client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve registers conn and blocks until the connection is closed.
func (h *Hub) Serve(conn *websocket.Conn, auth model.AuthContext) {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		auth: auth,
	}
	h.register(client)

	go client.writePump()
	client.readPump()
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll closes every open connection.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.conn.Close()
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("chat client connected",
		slog.Bool("authenticated", c.auth.Authenticated),
		slog.Int("clients", h.Count()),
	)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	h.logger.Info("chat client disconnected", slog.Int("clients", h.Count()))
}

// handle runs one chat request and returns the encoded reply.
func (h *Hub) handle(ctx context.Context, auth model.AuthContext, frame []byte) []byte {
	var req usecase_chat.Request
	if err := json.Unmarshal(frame, &req); err != nil {
		return encode(errorReply{Error: "invalid request body"})
	}

	resp, err := h.chat.Chat(ctx, auth, req)
	if err != nil {
		h.logger.Warn("chat over websocket failed", slog.String("error", err.Error()))
		return encode(errorReply{Error: err.Error()})
	}
	return encode(resp)
}

func encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return b
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("chat websocket closed", slog.String("error", err.Error()))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		reply := c.hub.handle(ctx, c.auth, frame)
		cancel()

		c.send <- reply
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
