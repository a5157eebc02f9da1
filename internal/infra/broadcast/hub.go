// Package broadcast delivers change signals to the displays of one store.
// Each store id is a room; a display's connection joins the rooms it renders.
package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"signage-sync/internal/domain/change"

	"github.com/google/uuid"
)

const (
	DefaultSendBuffer = 16
	publishQueueSize  = 256
)

// Subscriber is one receiving end of the hub, usually a WebSocket connection.
// Its queue is closed by the hub on Unregister or when the hub stops.
type Subscriber struct {
	send      chan []byte
	closeOnce sync.Once
	closed    atomic.Bool
}

func NewSubscriber(buffer int) *Subscriber {
	if buffer <= 0 {
		buffer = DefaultSendBuffer
	}
	return &Subscriber{send: make(chan []byte, buffer)}
}

func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.send)
	})
}

type Stats struct {
	Rooms            int    `json:"rooms"`
	Subscribers      int    `json:"subscribers"`
	Delivered        uint64 `json:"delivered"`
	Dropped          uint64 `json:"dropped"`
	DroppedPublishes uint64 `json:"dropped_publishes"`
}

type membership struct {
	sub     *Subscriber
	storeID uuid.UUID
}

type outgoing struct {
	storeID uuid.UUID
	payload []byte
}

// Hub owns the room table. All mutations happen on the goroutine running
// Run; the exported methods only hand requests to it.
type Hub struct {
	source string
	logger *slog.Logger

	rooms   map[uuid.UUID]map[*Subscriber]struct{}
	members map[*Subscriber]map[uuid.UUID]struct{}

	join       chan membership
	leave      chan membership
	unregister chan *Subscriber
	publish    chan outgoing
	stats      chan chan Stats
	done       chan struct{}
	running    atomic.Bool

	delivered        atomic.Uint64
	dropped          atomic.Uint64
	droppedPublishes atomic.Uint64
}

func NewHub(source string, logger *slog.Logger) *Hub {
	return &Hub{
		source:     source,
		logger:     logger,
		rooms:      make(map[uuid.UUID]map[*Subscriber]struct{}),
		members:    make(map[*Subscriber]map[uuid.UUID]struct{}),
		join:       make(chan membership),
		leave:      make(chan membership),
		unregister: make(chan *Subscriber),
		publish:    make(chan outgoing, publishQueueSize),
		stats:      make(chan chan Stats),
		done:       make(chan struct{}),
	}
}

// Run processes hub requests until ctx is done, then closes every
// subscriber queue. It must be called exactly once.
func (h *Hub) Run(ctx context.Context) {
	if !h.running.CompareAndSwap(false, true) {
		return
	}
	defer close(h.done)
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case m := <-h.join:
			h.addMember(m)
		case m := <-h.leave:
			h.removeMember(m.sub, m.storeID)
		case sub := <-h.unregister:
			for storeID := range h.members[sub] {
				h.removeMember(sub, storeID)
			}
			sub.close()
		case out := <-h.publish:
			h.deliver(out)
		case reply := <-h.stats:
			reply <- h.snapshotStats()
		}
	}
}

func (h *Hub) Join(sub *Subscriber, storeID uuid.UUID) {
	select {
	case h.join <- membership{sub: sub, storeID: storeID}:
	case <-h.done:
	}
}

func (h *Hub) Leave(sub *Subscriber, storeID uuid.UUID) {
	select {
	case h.leave <- membership{sub: sub, storeID: storeID}:
	case <-h.done:
	}
}

// Unregister leaves every room and closes the subscriber's queue.
func (h *Hub) Unregister(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
		sub.close()
	}
}

// Publish queues sig for the room of its store. When the hub is saturated
// the signal is dropped and counted; the caller is never blocked.
func (h *Hub) Publish(_ context.Context, sig change.Signal) {
	payload, err := sig.Encode(h.source)
	if err != nil {
		h.logger.Error("failed to encode change signal", "store_id", sig.StoreID, "error", err)
		return
	}
	select {
	case h.publish <- outgoing{storeID: sig.StoreID, payload: payload}:
	default:
		h.droppedPublishes.Add(1)
		h.logger.Warn("change signal dropped, hub queue full", "store_id", sig.StoreID, "type", sig.Type)
	}
}

func (h *Hub) Stats() Stats {
	reply := make(chan Stats, 1)
	select {
	case h.stats <- reply:
		return <-reply
	case <-h.done:
		return Stats{
			Delivered:        h.delivered.Load(),
			Dropped:          h.dropped.Load(),
			DroppedPublishes: h.droppedPublishes.Load(),
		}
	}
}

func (h *Hub) addMember(m membership) {
	if m.sub.closed.Load() {
		return
	}
	room, ok := h.rooms[m.storeID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.rooms[m.storeID] = room
	}
	room[m.sub] = struct{}{}

	joined, ok := h.members[m.sub]
	if !ok {
		joined = make(map[uuid.UUID]struct{})
		h.members[m.sub] = joined
	}
	joined[m.storeID] = struct{}{}
}

func (h *Hub) removeMember(sub *Subscriber, storeID uuid.UUID) {
	if room, ok := h.rooms[storeID]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, storeID)
		}
	}
	if joined, ok := h.members[sub]; ok {
		delete(joined, storeID)
		if len(joined) == 0 {
			delete(h.members, sub)
		}
	}
}

func (h *Hub) deliver(out outgoing) {
	for sub := range h.rooms[out.storeID] {
		select {
		case sub.send <- out.payload:
			h.delivered.Add(1)
		default:
			h.dropped.Add(1)
			h.logger.Debug("subscriber queue full, signal dropped", "store_id", out.storeID)
		}
	}
}

func (h *Hub) snapshotStats() Stats {
	return Stats{
		Rooms:            len(h.rooms),
		Subscribers:      len(h.members),
		Delivered:        h.delivered.Load(),
		Dropped:          h.dropped.Load(),
		DroppedPublishes: h.droppedPublishes.Load(),
	}
}

func (h *Hub) closeAll() {
	for sub := range h.members {
		sub.close()
	}
	h.rooms = make(map[uuid.UUID]map[*Subscriber]struct{})
	h.members = make(map[*Subscriber]map[uuid.UUID]struct{})
}
