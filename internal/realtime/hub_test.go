package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, registry *Registry) *websocket.Conn {
	t.Helper()

	hub := NewHub(registry, &HubOptions{Logger: logger.New()})
	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) ServerFrame {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, raw, err := ws.ReadMessage()
	require.NoError(t, err)

	var frame ServerFrame
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame
}

func TestHubAcksConnectionInit(t *testing.T) {
	registry := NewRegistry()
	ws := dialHub(t, registry)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "connection_init"}))

	frame := readFrame(t, ws)
	assert.Equal(t, MessageConnectionAck, frame.Type)
}

func TestHubSubscribeReceivesPublishedEvent(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	projectID := uuid.New()
	ws := dialHub(t, registry)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "connection_init"}))
	readFrame(t, ws)

	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"type": "subscribe",
		"id":   "sub-1",
		"payload": SubscribePayload{
			Kind:      KindTaskUpdates,
			Variables: map[string]string{"projectId": projectID.String()},
		},
	}))

	// The subscribe frame is processed asynchronously by the read pump
	require.Eventually(t, func() bool {
		return len(registry.Deliveries(TaskTopic(projectID.String()))) == 1
	}, 5*time.Second, 10*time.Millisecond)

	result := broadcaster.PublishTaskChanged(projectID, TaskSnapshot{Title: "Fix login flow", Status: "TODO"})
	assert.Equal(t, 1, result.Delivered)

	frame := readFrame(t, ws)
	assert.Equal(t, MessageNext, frame.Type)
	assert.Equal(t, "sub-1", frame.ID)
}

func TestHubCompleteStopsDelivery(t *testing.T) {
	registry := NewRegistry()
	projectID := uuid.New()
	ws := dialHub(t, registry)

	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"type": "subscribe",
		"id":   "sub-1",
		"payload": SubscribePayload{
			Kind:      KindTaskUpdates,
			Variables: map[string]string{"projectId": projectID.String()},
		},
	}))
	require.Eventually(t, func() bool {
		return len(registry.Deliveries(TaskTopic(projectID.String()))) == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "complete", "id": "sub-1"}))

	require.Eventually(t, func() bool {
		return len(registry.Deliveries(TaskTopic(projectID.String()))) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHubUnrecognizedSubscribeIsIgnored(t *testing.T) {
	registry := NewRegistry()
	ws := dialHub(t, registry)

	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"type":    "subscribe",
		"id":      "sub-1",
		"payload": SubscribePayload{Query: "subscription { somethingElse }"},
	}))

	// Still answers later frames, so the connection survived the bad subscribe
	require.NoError(t, ws.WriteJSON(map[string]string{"type": "connection_init"}))
	frame := readFrame(t, ws)
	assert.Equal(t, MessageConnectionAck, frame.Type)
}

func TestHubDisconnectCleansRegistry(t *testing.T) {
	registry := NewRegistry()
	projectID := uuid.New()
	ws := dialHub(t, registry)

	require.NoError(t, ws.WriteJSON(map[string]interface{}{
		"type": "subscribe",
		"id":   "sub-1",
		"payload": SubscribePayload{
			Kind:      KindTaskUpdates,
			Variables: map[string]string{"projectId": projectID.String()},
		},
	}))
	require.Eventually(t, func() bool {
		return len(registry.Deliveries(TaskTopic(projectID.String()))) == 1
	}, 5*time.Second, 10*time.Millisecond)

	ws.Close()

	require.Eventually(t, func() bool {
		return len(registry.Deliveries(TaskTopic(projectID.String()))) == 0
	}, 5*time.Second, 10*time.Millisecond)
}
