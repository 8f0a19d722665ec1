package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Treata11/MuVis-v2.1.1/logging"
)

// ErrClosed is returned by Broadcast after Close
var ErrClosed = errors.New("stream: broadcaster closed")

// Config tunes the WebSocket fan-out
type Config struct {
	ReadBufferSize  int           `json:"read_buffer_size"`
	WriteBufferSize int           `json:"write_buffer_size"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	MinSendInterval time.Duration `json:"min_send_interval"`
}

// DefaultConfig returns buffer sizes and pacing suited to frame
// payloads of a few thousand points at display refresh rates
func DefaultConfig() *Config {
	return &Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		WriteTimeout:    5 * time.Second,
		MinSendInterval: 0, // let the render loop set the pace
	}
}

// Validate fails fast on configuration misuse
func (c *Config) Validate() error {
	if c.ReadBufferSize < 0 {
		return fmt.Errorf("stream: read buffer size must not be negative, got %d", c.ReadBufferSize)
	}
	if c.WriteBufferSize < 0 {
		return fmt.Errorf("stream: write buffer size must not be negative, got %d", c.WriteBufferSize)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("stream: write timeout must not be negative, got %v", c.WriteTimeout)
	}
	if c.MinSendInterval < 0 {
		return fmt.Errorf("stream: min send interval must not be negative, got %v", c.MinSendInterval)
	}
	return nil
}

// Broadcaster fans rendered frames out to every connected WebSocket
// client. It is an http.Handler: mount it on the route that viewers
// connect to. Frames are serialized once per broadcast and written to
// all clients; a client that fails its write is dropped on the spot.
//
// An optional minimum send interval drops frames arriving faster than
// clients should see them, so a fast render loop cannot flood slow
// viewers.
type Broadcaster struct {
	config   *Config
	upgrader websocket.Upgrader
	logger   logging.Logger

	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	lastSend time.Time
	closed   bool
}

// NewBroadcaster creates a broadcaster; nil selects DefaultConfig
func NewBroadcaster(config *Config) (*Broadcaster, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Broadcaster{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // viewers connect from arbitrary origins
			},
		},
		logger:  logging.WithFields(logging.Fields{"component": "stream"}),
		clients: make(map[*websocket.Conn]bool),
	}, nil
}

// ServeHTTP upgrades the connection and registers the client. A reader
// goroutine drains incoming messages so close frames are processed and
// disconnected clients unregister themselves.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade failed", logging.Fields{
			"remote": r.RemoteAddr,
			"error":  err.Error(),
		})
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.clients[conn] = true
	total := len(b.clients)
	b.mu.Unlock()

	b.logger.Debug("client connected", logging.Fields{
		"remote":  conn.RemoteAddr().String(),
		"clients": total,
	})

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		b.drop(conn)
	}()
}

// Broadcast serializes the frame once and writes it to every client.
// Frames inside the minimum send interval are dropped silently; write
// failures drop the failing client, never the frame.
func (b *Broadcaster) Broadcast(frame *Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("stream: marshal frame: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	now := time.Now()
	if b.config.MinSendInterval > 0 && now.Sub(b.lastSend) < b.config.MinSendInterval {
		return nil
	}
	b.lastSend = now

	for conn := range b.clients {
		if b.config.WriteTimeout > 0 {
			conn.SetWriteDeadline(now.Add(b.config.WriteTimeout))
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.logger.Warn("dropping client after failed write", logging.Fields{
				"remote": conn.RemoteAddr().String(),
				"error":  err.Error(),
			})
			conn.Close()
			delete(b.clients, conn)
		}
	}
	return nil
}

// ClientCount returns the number of connected clients
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close disconnects every client and rejects future broadcasts.
// Idempotent.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.logger.Debug("broadcaster closed")
	return nil
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	conn.Close()

	b.mu.Lock()
	if _, ok := b.clients[conn]; !ok {
		b.mu.Unlock()
		return
	}
	delete(b.clients, conn)
	total := len(b.clients)
	b.mu.Unlock()

	b.logger.Debug("client disconnected", logging.Fields{
		"remote":  conn.RemoteAddr().String(),
		"clients": total,
	})
}
