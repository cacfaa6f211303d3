package events

import (
	"sync"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

func ValidOperation(op Operation) bool {
	switch op {
	case OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

// ServiceEvent is what subscribers receive when the catalog changes.
type ServiceEvent struct {
	Op   Operation `json:"op"`
	Name string    `json:"name"`
}

type subscription struct {
	ops map[Operation]bool // nil means every operation
	ch  chan ServiceEvent
}

// Hub fans catalog change events out to live subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int64]*subscription
	nextID int64
	closed bool
}

const subscriberBuffer = 16

func NewHub() *Hub {
	return &Hub{subs: make(map[int64]*subscription)}
}

// Subscribe registers a listener for the given operations; with no operations
// given, the listener receives everything. The returned id releases the
// subscription via Unsubscribe.
func (h *Hub) Subscribe(ops ...Operation) (int64, <-chan ServiceEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscription{ch: make(chan ServiceEvent, subscriberBuffer)}
	if len(ops) > 0 {
		sub.ops = make(map[Operation]bool, len(ops))
		for _, op := range ops {
			sub.ops[op] = true
		}
	}

	h.nextID++
	id := h.nextID
	h.subs[id] = sub
	return id, sub.ch
}

func (h *Hub) Unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		close(sub.ch)
		delete(h.subs, id)
	}
}

// Publish delivers the event to every matching subscriber without blocking.
func (h *Hub) Publish(op Operation, name string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	ev := ServiceEvent{Op: op, Name: name}
	for _, sub := range h.subs {
		if sub.ops != nil && !sub.ops[op] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, id)
	}
}
