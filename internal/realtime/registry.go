package realtime

import (
	"sync"
)

// Sender queues an encoded frame for delivery to one connection. It must
// never block; implementations report false when the frame was dropped
// (queue full or connection gone).
type Sender interface {
	Send(frame []byte) bool
}

// Registry maintains, per live connection, the mapping from client-chosen
// subscription ids to topics and the reverse topic membership index used
// for fan-out. It is shared mutable state between connection goroutines
// and publishers, guarded by a single mutex (cardinality is low).
//
// Registries are injectable: every component needing publish or subscribe
// access receives a reference, so tests run against fresh instances.
type Registry struct {
	mu     sync.RWMutex
	conns  map[string]*connEntry
	topics map[string]map[string]map[string]struct{} // topic → connID → subIDs
}

type connEntry struct {
	sender Sender
	subs   map[string]string // subID → topic
}

// Delivery is one (connection, subscription) pair matching a topic. A
// connection holding two subscription ids on one topic appears twice.
type Delivery struct {
	ConnID string
	SubID  string
	Sender Sender
}

// NewRegistry creates an empty subscription registry
func NewRegistry() *Registry {
	return &Registry{
		conns:  make(map[string]*connEntry),
		topics: make(map[string]map[string]map[string]struct{}),
	}
}

// Register adds a live connection. Subscriptions for unknown connections
// are ignored, so Register must precede Subscribe.
func (r *Registry) Register(connID string, sender Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[connID]; ok {
		return
	}
	r.conns[connID] = &connEntry{
		sender: sender,
		subs:   make(map[string]string),
	}
}

// Subscribe idempotently maps subID to topic for the connection and adds
// the connection to the topic's member set.
func (r *Registry) Subscribe(connID, subID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.conns[connID]
	if !ok {
		return
	}

	// A subscription id re-used for a different topic moves, not duplicates.
	if prev, ok := entry.subs[subID]; ok && prev != topic {
		r.removeMembership(connID, subID, prev)
	}
	entry.subs[subID] = topic

	members, ok := r.topics[topic]
	if !ok {
		members = make(map[string]map[string]struct{})
		r.topics[topic] = members
	}
	subIDs, ok := members[connID]
	if !ok {
		subIDs = make(map[string]struct{})
		members[connID] = subIDs
	}
	subIDs[subID] = struct{}{}
}

// Unsubscribe removes the subscription if present; no-op for unknown ids.
// When it was the connection's last subscription for its topic, the
// connection leaves that topic's member set.
func (r *Registry) Unsubscribe(connID, subID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.conns[connID]
	if !ok {
		return
	}
	topic, ok := entry.subs[subID]
	if !ok {
		return
	}
	delete(entry.subs, subID)
	r.removeMembership(connID, subID, topic)
}

// Disconnect removes every subscription owned by the connection and the
// connection itself. Safe to call more than once and safe to race with an
// in-flight Unsubscribe for the same id.
func (r *Registry) Disconnect(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.conns[connID]
	if !ok {
		return
	}
	for subID, topic := range entry.subs {
		r.removeMembership(connID, subID, topic)
	}
	delete(r.conns, connID)
}

// Deliveries snapshots the (connection, subscription) pairs registered for
// a topic. Publishers iterate the snapshot outside the lock.
func (r *Registry) Deliveries(topic string) []Delivery {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.topics[topic]
	if !ok {
		return nil
	}
	deliveries := make([]Delivery, 0, len(members))
	for connID, subIDs := range members {
		entry, ok := r.conns[connID]
		if !ok {
			continue
		}
		for subID := range subIDs {
			deliveries = append(deliveries, Delivery{
				ConnID: connID,
				SubID:  subID,
				Sender: entry.sender,
			})
		}
	}
	return deliveries
}

// SubscriptionCount reports how many subscriptions a connection holds
func (r *Registry) SubscriptionCount(connID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.conns[connID]
	if !ok {
		return 0
	}
	return len(entry.subs)
}

// removeMembership must be called with the lock held
func (r *Registry) removeMembership(connID, subID, topic string) {
	members, ok := r.topics[topic]
	if !ok {
		return
	}
	subIDs, ok := members[connID]
	if !ok {
		return
	}
	delete(subIDs, subID)
	if len(subIDs) == 0 {
		delete(members, connID)
	}
	if len(members) == 0 {
		delete(r.topics, topic)
	}
}
