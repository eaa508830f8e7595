package realtime

import (
	"encoding/json"
)

// Message types exchanged over the realtime channel. The shape follows the
// graphql-transport-ws framing the original frontend speaks.
const (
	MessageConnectionInit = "connection_init"
	MessageConnectionAck  = "connection_ack"
	MessageSubscribe      = "subscribe"
	MessageComplete       = "complete"
	MessageNext           = "next"
)

// Frame is an inbound client message
type Frame struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerFrame is an outbound server message
type ServerFrame struct {
	Type    string      `json:"type"`
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// NextFrame wraps event data in a `next` frame tagged with the subscription
// id the receiving connection used for the topic.
func NextFrame(subID string, data interface{}) ServerFrame {
	return ServerFrame{
		Type:    MessageNext,
		ID:      subID,
		Payload: map[string]interface{}{"data": data},
	}
}

// AckFrame is the reply to connection_init
func AckFrame() ServerFrame {
	return ServerFrame{Type: MessageConnectionAck}
}
