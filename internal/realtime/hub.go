package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// HubOptions configures the websocket hub
type HubOptions struct {
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
	WriteTimeout    time.Duration
	CheckOrigin     func(r *http.Request) bool
	Logger          *logger.Logger
}

// Hub upgrades HTTP requests to websocket connections and runs one reader
// goroutine per connection, handling that connection's frames sequentially.
// All registry mutations pass through the shared Registry.
type Hub struct {
	registry     *Registry
	upgrader     websocket.Upgrader
	log          *logger.Logger
	sendQueue    int
	writeTimeout time.Duration
}

const (
	defaultSendQueueSize = 32
	defaultWriteTimeout  = 10 * time.Second
	pongWait             = 60 * time.Second
	pingPeriod           = (pongWait * 9) / 10
)

// NewHub creates a websocket hub over the given registry
func NewHub(registry *Registry, opts *HubOptions) *Hub {
	if opts == nil {
		opts = &HubOptions{}
	}
	if opts.SendQueueSize == 0 {
		opts.SendQueueSize = defaultSendQueueSize
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}
	checkOrigin := opts.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Hub{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  opts.ReadBufferSize,
			WriteBufferSize: opts.WriteBufferSize,
			CheckOrigin:     checkOrigin,
		},
		log:          opts.Logger,
		sendQueue:    opts.SendQueueSize,
		writeTimeout: opts.WriteTimeout,
	}
}

// ServeHTTP upgrades the request and runs the connection until it closes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade failed: %v", err)
		return
	}

	conn := &connection{
		id:   uuid.NewString(),
		ws:   ws,
		send: make(chan []byte, h.sendQueue),
		done: make(chan struct{}),
	}
	h.registry.Register(conn.id, conn)

	go h.writePump(conn)
	h.readPump(conn)
}

// readPump handles the connection's inbound frames sequentially
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.registry.Disconnect(c.id)
		c.close()
	}()

	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithField("conn_id", c.id).Debugf("websocket read error: %v", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.log.WithField("conn_id", c.id).Debugf("ignoring malformed frame: %v", err)
			continue
		}

		switch frame.Type {
		case MessageConnectionInit:
			h.sendFrame(c, AckFrame())
		case MessageSubscribe:
			h.handleSubscribe(c, frame)
		case MessageComplete:
			h.registry.Unsubscribe(c.id, frame.ID)
		}
	}
}

func (h *Hub) handleSubscribe(c *connection, frame Frame) {
	var payload SubscribePayload
	if len(frame.Payload) > 0 {
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			h.log.WithField("conn_id", c.id).Debugf("ignoring malformed subscribe payload: %v", err)
			return
		}
	}

	topic, ok := ResolveTopic(payload)
	if !ok {
		// Unrecognized subscriptions are ignored, not rejected.
		return
	}
	h.registry.Subscribe(c.id, frame.ID, topic)
}

func (h *Hub) sendFrame(c *connection, frame ServerFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.log.Errorf("failed to encode server frame: %v", err)
		return
	}
	c.Send(data)
}

// writePump owns all writes to the socket, draining the connection's send
// queue and keeping the connection alive with pings.
func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !ok {
				return
			}
			c.ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// connection is one live client socket. Send never blocks: a frame that
// does not fit the queue is dropped and reported to the caller.
type connection struct {
	id        string
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// Send implements Sender
func (c *connection) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}
