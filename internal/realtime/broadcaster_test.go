package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishTaskChangedFansOut(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	projectID := uuid.New()

	first := &fakeSender{}
	second := &fakeSender{}
	registry.Register("conn-1", first)
	registry.Register("conn-2", second)
	registry.Subscribe("conn-1", "sub-a", TaskTopic(projectID.String()))
	registry.Subscribe("conn-2", "sub-b", TaskTopic(projectID.String()))

	result := broadcaster.PublishTaskChanged(projectID, TaskSnapshot{
		ID:     uuid.New().String(),
		Title:  "Fix login flow",
		Status: "IN_PROGRESS",
	})

	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 2, result.Delivered)
	assert.Equal(t, 0, result.Dropped)
	assert.Len(t, first.sent(), 1)
	assert.Len(t, second.sent(), 1)
}

func TestPublishTaskChangedFrameShape(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	projectID := uuid.New()

	sender := &fakeSender{}
	registry.Register("conn-1", sender)
	registry.Subscribe("conn-1", "sub-42", TaskTopic(projectID.String()))

	broadcaster.PublishTaskChanged(projectID, TaskSnapshot{
		ID:     "task-id",
		Title:  "Fix login flow",
		Status: "DONE",
	})

	frames := sender.sent()
	require.Len(t, frames, 1)

	var frame struct {
		Type    string `json:"type"`
		ID      string `json:"id"`
		Payload struct {
			Data struct {
				TaskUpdated TaskSnapshot `json:"taskUpdated"`
			} `json:"data"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(frames[0], &frame))
	assert.Equal(t, "next", frame.Type)
	assert.Equal(t, "sub-42", frame.ID)
	assert.Equal(t, "Fix login flow", frame.Payload.Data.TaskUpdated.Title)
	assert.Equal(t, "DONE", frame.Payload.Data.TaskUpdated.Status)
}

func TestPublishCommentAddedFrameShape(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	taskID := uuid.New()

	sender := &fakeSender{}
	registry.Register("conn-1", sender)
	registry.Subscribe("conn-1", "sub-1", CommentTopic(taskID.String()))

	result := broadcaster.PublishCommentAdded(taskID, CommentSnapshot{
		ID:          "comment-id",
		Content:     "On it",
		AuthorEmail: "dev@acme.test",
		CreatedAt:   time.Now(),
	})

	assert.Equal(t, 1, result.Delivered)

	frames := sender.sent()
	require.Len(t, frames, 1)

	var frame struct {
		Type    string `json:"type"`
		Payload struct {
			Data struct {
				CommentAdded CommentSnapshot `json:"commentAdded"`
			} `json:"data"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(frames[0], &frame))
	assert.Equal(t, "next", frame.Type)
	assert.Equal(t, "On it", frame.Payload.Data.CommentAdded.Content)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())

	result := broadcaster.PublishTaskChanged(uuid.New(), TaskSnapshot{Title: "Nobody listening"})

	assert.Equal(t, PublishResult{}, result)
}

func TestPublishScopedToTopic(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	projectA := uuid.New()
	projectB := uuid.New()

	listenerA := &fakeSender{}
	listenerB := &fakeSender{}
	registry.Register("conn-a", listenerA)
	registry.Register("conn-b", listenerB)
	registry.Subscribe("conn-a", "sub-1", TaskTopic(projectA.String()))
	registry.Subscribe("conn-b", "sub-1", TaskTopic(projectB.String()))

	result := broadcaster.PublishTaskChanged(projectA, TaskSnapshot{Title: "Only A"})

	assert.Equal(t, 1, result.Matched)
	assert.Len(t, listenerA.sent(), 1)
	assert.Empty(t, listenerB.sent())
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger.New())
	projectID := uuid.New()

	healthy := &fakeSender{}
	slow := &fakeSender{reject: true}
	registry.Register("conn-healthy", healthy)
	registry.Register("conn-slow", slow)
	registry.Subscribe("conn-healthy", "sub-1", TaskTopic(projectID.String()))
	registry.Subscribe("conn-slow", "sub-1", TaskTopic(projectID.String()))

	result := broadcaster.PublishTaskChanged(projectID, TaskSnapshot{Title: "First"})

	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 1, result.Delivered)
	assert.Equal(t, 1, result.Dropped)

	// The slow connection left the fan-out set entirely
	result = broadcaster.PublishTaskChanged(projectID, TaskSnapshot{Title: "Second"})
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Delivered)
	assert.Len(t, healthy.sent(), 2)
	assert.Equal(t, 0, registry.SubscriptionCount("conn-slow"))
}
