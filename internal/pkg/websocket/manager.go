package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/observability"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// client is one open socket. A user may hold several (one per tab or device).
// Writes go through send and are flushed by a dedicated goroutine, so a
// stalled peer never blocks the caller.
type client struct {
	userID string
	conn   *websocket.Conn
	send   chan models.WSMessage
	done   chan struct{}
	once   sync.Once
}

func newClient(userID string, conn *websocket.Conn) *client {
	return &client{
		userID: userID,
		conn:   conn,
		send:   make(chan models.WSMessage, sendBuffer),
		done:   make(chan struct{}),
	}
}

// enqueue reports false when the send buffer is full
func (c *client) enqueue(msg models.WSMessage) bool {
	select {
	case <-c.done:
		return true
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

// writePump owns every write on the socket and closes it on exit
func (c *client) writePump() {
	defer c.conn.Close()
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Warn("WebSocket write failed",
					logger.String("user_id", c.userID),
					logger.String("event", msg.Event),
					logger.Err(err))
				return
			}
		}
	}
}

// Manager manages WebSocket connections keyed by user
type Manager struct {
	sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request for an already authenticated user
// and blocks until the peer goes away.
func (m *Manager) HandleConnection(c echo.Context, userID string) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := newClient(userID, ws)
	m.add(cl)
	go cl.writePump()
	defer func() {
		m.remove(cl)
		cl.stop()
	}()

	if err := m.send(cl, constants.EventConnected, map[string]string{"user_id": userID}); err != nil {
		return nil
	}

	// Clients never send anything we act on; reading keeps control frames flowing.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket closed unexpectedly",
					logger.String("user_id", userID),
					logger.Err(err))
			}
			return nil
		}
	}
}

func (m *Manager) add(cl *client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[cl.userID]
	if !ok {
		set = make(map[*client]struct{})
		m.clients[cl.userID] = set
	}
	set[cl] = struct{}{}
	observability.WebSocketClients.Inc()
}

func (m *Manager) remove(cl *client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[cl.userID]
	if !ok {
		return
	}
	if _, ok := set[cl]; !ok {
		return
	}
	delete(set, cl)
	if len(set) == 0 {
		delete(m.clients, cl.userID)
	}
	observability.WebSocketClients.Dec()
}

// ConnectionCount returns the number of open sockets for userID
func (m *Manager) ConnectionCount(userID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID])
}

func encode(event string, data interface{}) (models.WSMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return models.WSMessage{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return models.WSMessage{Event: event, Data: raw}, nil
}

func (m *Manager) send(cl *client, event string, data interface{}) error {
	msg, err := encode(event, data)
	if err != nil {
		return err
	}
	if !cl.enqueue(msg) {
		m.drop(cl)
		return fmt.Errorf("send buffer full for user %s", cl.userID)
	}
	return nil
}

// drop disconnects a client that stopped draining its buffer
func (m *Manager) drop(cl *client) {
	logger.Warn("Dropping slow WebSocket client", logger.String("user_id", cl.userID))
	m.remove(cl)
	cl.stop()
}

// NotifyClient queues event for every connection of userID and never waits
// on a peer. Users without an open socket are skipped silently.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	targets := make([]*client, 0, len(m.clients[userID]))
	for cl := range m.clients[userID] {
		targets = append(targets, cl)
	}
	m.RUnlock()
	if len(targets) == 0 {
		return
	}

	msg, err := encode(event, data)
	if err != nil {
		logger.Warn("Error encoding message for client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return
	}
	for _, cl := range targets {
		if !cl.enqueue(msg) {
			m.drop(cl)
		}
	}
}
