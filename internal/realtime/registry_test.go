package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSender records frames and can simulate a full send queue
type fakeSender struct {
	mu     sync.Mutex
	frames [][]byte
	reject bool
}

func (s *fakeSender) Send(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reject {
		return false
	}
	s.frames = append(s.frames, frame)
	return true
}

func (s *fakeSender) sent() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.frames...)
}

func TestSubscribeBeforeRegisterIsIgnored(t *testing.T) {
	registry := NewRegistry()

	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	assert.Empty(t, registry.Deliveries(TaskTopic("p1")))
	assert.Equal(t, 0, registry.SubscriptionCount("conn-1"))
}

func TestSubscribeAndDeliveries(t *testing.T) {
	registry := NewRegistry()
	sender := &fakeSender{}
	registry.Register("conn-1", sender)

	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	deliveries := registry.Deliveries(TaskTopic("p1"))
	assert.Len(t, deliveries, 1)
	assert.Equal(t, "conn-1", deliveries[0].ConnID)
	assert.Equal(t, "sub-1", deliveries[0].SubID)
	assert.Equal(t, 1, registry.SubscriptionCount("conn-1"))
}

func TestDuplicateSubscribeIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})

	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	assert.Len(t, registry.Deliveries(TaskTopic("p1")), 1)
	assert.Equal(t, 1, registry.SubscriptionCount("conn-1"))
}

func TestReusedSubscriptionIDMovesTopic(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})

	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p2"))

	assert.Empty(t, registry.Deliveries(TaskTopic("p1")))
	assert.Len(t, registry.Deliveries(TaskTopic("p2")), 1)
	assert.Equal(t, 1, registry.SubscriptionCount("conn-1"))
}

func TestTwoSubscriptionsOnOneTopicDeliverTwice(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})

	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))
	registry.Subscribe("conn-1", "sub-2", TaskTopic("p1"))

	deliveries := registry.Deliveries(TaskTopic("p1"))
	assert.Len(t, deliveries, 2)
	subIDs := map[string]bool{}
	for _, d := range deliveries {
		subIDs[d.SubID] = true
	}
	assert.True(t, subIDs["sub-1"])
	assert.True(t, subIDs["sub-2"])
}

func TestUnsubscribeUnknownIDIsNoOp(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	registry.Unsubscribe("conn-1", "sub-does-not-exist")
	registry.Unsubscribe("conn-unknown", "sub-1")

	assert.Len(t, registry.Deliveries(TaskTopic("p1")), 1)
}

func TestUnsubscribeRemovesMembership(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	registry.Unsubscribe("conn-1", "sub-1")

	assert.Empty(t, registry.Deliveries(TaskTopic("p1")))
	assert.Equal(t, 0, registry.SubscriptionCount("conn-1"))
}

func TestDisconnectRemovesAllSubscriptions(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})
	registry.Register("conn-2", &fakeSender{})
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))
	registry.Subscribe("conn-1", "sub-2", CommentTopic("t1"))
	registry.Subscribe("conn-2", "sub-1", TaskTopic("p1"))

	registry.Disconnect("conn-1")

	assert.Len(t, registry.Deliveries(TaskTopic("p1")), 1)
	assert.Empty(t, registry.Deliveries(CommentTopic("t1")))
	assert.Equal(t, 0, registry.SubscriptionCount("conn-1"))

	// Repeating the disconnect must be safe
	registry.Disconnect("conn-1")
	assert.Len(t, registry.Deliveries(TaskTopic("p1")), 1)
}

func TestDeliveriesSnapshotIsIndependent(t *testing.T) {
	registry := NewRegistry()
	registry.Register("conn-1", &fakeSender{})
	registry.Subscribe("conn-1", "sub-1", TaskTopic("p1"))

	snapshot := registry.Deliveries(TaskTopic("p1"))
	registry.Disconnect("conn-1")

	assert.Len(t, snapshot, 1)
	assert.Empty(t, registry.Deliveries(TaskTopic("p1")))
}

func TestConcurrentChurn(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			connID := fmt.Sprintf("conn-%d", n)
			registry.Register(connID, &fakeSender{})
			for j := 0; j < 50; j++ {
				subID := fmt.Sprintf("sub-%d", j)
				registry.Subscribe(connID, subID, TaskTopic("shared"))
				registry.Deliveries(TaskTopic("shared"))
				registry.Unsubscribe(connID, subID)
			}
			registry.Disconnect(connID)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, registry.Deliveries(TaskTopic("shared")))
}
