package websockets

import (
	"encoding/json"
	"sync"
	"time"

	"rentalos/internal/events"
	"rentalos/internal/logger"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

// Manager pushes notification events to every connected client. The reducer
// never talks to the socket layer; events arrive through the bus.
type Manager struct {
	clients  map[*websocket.Conn]bool
	mutex    sync.RWMutex
	eventBus *events.EventBus
	log      logger.Logger
}

func New(eventBus *events.EventBus) (*Manager, error) {
	log := logger.New("websockets")

	manager := &Manager{
		clients:  make(map[*websocket.Conn]bool),
		eventBus: eventBus,
		log:      log,
	}

	if err := eventBus.Subscribe(events.NOTIFICATION_CHANNEL, manager.handleNotificationEvent); err != nil {
		return nil, log.Err("failed to subscribe to notification channel", err)
	}

	return manager, nil
}

// HandleWebSocket owns one client connection for its lifetime
func (m *Manager) HandleWebSocket(conn *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	m.register(conn)
	defer m.unregister(conn)

	log.Info("Client connected", "clients", m.ClientCount())

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Read loop: clients only listen, but we must drain control frames and
	// detect closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected websocket close", "error", err)
			}
			break
		}
	}

	log.Info("Client disconnected", "clients", m.ClientCount()-1)
}

func (m *Manager) handleNotificationEvent(event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return m.log.Function("handleNotificationEvent").
			Err("failed to marshal event", err, "eventID", event.ID)
	}

	m.broadcast(payload)
	return nil
}

func (m *Manager) broadcast(payload []byte) {
	log := m.log.Function("broadcast")

	m.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(m.clients))
	for conn := range m.clients {
		conns = append(conns, conn)
	}
	m.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			m.unregister(conn)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn("failed to write to client, dropping connection", "error", err)
			m.unregister(conn)
		}
	}
}

func (m *Manager) register(conn *websocket.Conn) {
	m.mutex.Lock()
	m.clients[conn] = true
	m.mutex.Unlock()
}

func (m *Manager) unregister(conn *websocket.Conn) {
	m.mutex.Lock()
	delete(m.clients, conn)
	m.mutex.Unlock()
}

func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}
