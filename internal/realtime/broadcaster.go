package realtime

import (
	"encoding/json"

	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=broadcaster.go -destination=../mocks/realtime_mocks.go -package=mocks

// Publisher hands committed domain events to the fan-out layer. Callers may
// ignore the result: delivery is best-effort and must never fail a mutation.
type Publisher interface {
	PublishTaskChanged(projectID uuid.UUID, task TaskSnapshot) PublishResult
	PublishCommentAdded(taskID uuid.UUID, comment CommentSnapshot) PublishResult
}

// PublishResult reports the outcome of one fan-out. It makes the
// "swallow delivery errors" contract explicit and auditable.
type PublishResult struct {
	Matched   int
	Delivered int
	Dropped   int
}

// Broadcaster resolves a domain event to a topic, looks up the registry
// members and delivers the event to each independently. Delivery is
// non-blocking with respect to the publisher; a connection whose send
// queue is full is disconnected from future fan-out instead of stalling it.
type Broadcaster struct {
	registry *Registry
	log      *logger.Logger
}

// NewBroadcaster creates a broadcaster over the given registry
func NewBroadcaster(registry *Registry, log *logger.Logger) *Broadcaster {
	if log == nil {
		log = logger.New()
	}
	return &Broadcaster{registry: registry, log: log}
}

// PublishTaskChanged fans out a task-changed event to the project's task stream
func (b *Broadcaster) PublishTaskChanged(projectID uuid.UUID, task TaskSnapshot) PublishResult {
	return b.publish(TaskTopic(projectID.String()), map[string]interface{}{"taskUpdated": task})
}

// PublishCommentAdded fans out a comment-added event to the task's comment stream
func (b *Broadcaster) PublishCommentAdded(taskID uuid.UUID, comment CommentSnapshot) PublishResult {
	return b.publish(CommentTopic(taskID.String()), map[string]interface{}{"commentAdded": comment})
}

func (b *Broadcaster) publish(topic string, data interface{}) PublishResult {
	result := PublishResult{}

	deliveries := b.registry.Deliveries(topic)
	result.Matched = len(deliveries)
	if result.Matched == 0 {
		return result
	}

	for _, d := range deliveries {
		frame, err := json.Marshal(NextFrame(d.SubID, data))
		if err != nil {
			b.log.WithField("topic", topic).Errorf("failed to encode event frame: %v", err)
			result.Dropped++
			continue
		}
		if d.Sender.Send(frame) {
			result.Delivered++
			continue
		}
		result.Dropped++
		// A full or dead connection leaves the fan-out set entirely.
		b.registry.Disconnect(d.ConnID)
		b.log.WithFields(map[string]interface{}{
			"topic":   topic,
			"conn_id": d.ConnID,
		}).Warn("dropped slow subscriber from fan-out")
	}

	return result
}
