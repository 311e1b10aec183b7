package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
	sendBufferSize = 32
)

// Client is one live connection. The send channel decouples fan-out from the
// peer's write speed; a peer that cannot drain loses frames instead of
// stalling the hub.
type Client struct {
	conn     *websocket.Conn
	userID   uuid.UUID
	username string

	send      chan []byte
	closeOnce sync.Once
	done      chan struct{}

	logger *slog.Logger
}

func newClient(conn *websocket.Conn, userID uuid.UUID, username string, logger *slog.Logger) *Client {
	return &Client{
		conn:     conn,
		userID:   userID,
		username: username,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// trySend queues a frame without blocking. Dropped frames are acceptable on
// this surface; durability lives in the message store.
func (c *Client) trySend(frame []byte) {
	select {
	case <-c.done:
	case c.send <- frame:
	default:
		c.logger.Warn("peer send buffer full, dropping frame", "user_id", c.userID)
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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

func (c *Client) readPump(onEvent func(*Client, inboundEnvelope)) {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env inboundEnvelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read failed", "user_id", c.userID, "error", err)
			}
			return
		}
		onEvent(c, env)
	}
}
