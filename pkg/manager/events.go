package manager

import (
	"context"
	"sync"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Op names the lifecycle operation an event originated from.
type Op string

const (
	OpList     Op = "list"
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpCheckout Op = "checkout"
	OpReturn   Op = "return"
	OpDelete   Op = "delete"
)

// Event is the record-set change notification delivered to subscribers after
// every operation: either the refreshed full record set, or the failure that
// stopped the operation. Exactly one of Records/Err is meaningful.
type Event struct {
	Op      Op
	Records []vehicle.Record
	Err     error
}

// notifier fans events out to subscribers without ever blocking an
// operation: a subscriber whose buffer is full misses the event and is
// dropped, the next full refresh will bring it back up to date anyway.
type notifier struct {
	mu         sync.RWMutex
	subs       map[chan Event]struct{}
	bufferSize int
	closed     bool
}

func newNotifier(bufferSize int) *notifier {
	return &notifier{
		subs:       make(map[chan Event]struct{}),
		bufferSize: max(bufferSize, 1),
	}
}

// subscribe registers a new channel whose lifetime is bound to ctx.
func (n *notifier) subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, n.bufferSize)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		close(ch)
		return ch
	}
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			n.unsubscribe(ch)
		}()
	}
	return ch
}

func (n *notifier) unsubscribe(ch chan Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(ch)
	}
}

func (n *notifier) publish(ev Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}
	for ch := range n.subs {
		select {
		case ch <- ev:
		default:
			// Slow subscriber: drop rather than stall the operation.
			go n.unsubscribe(ch)
		}
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for ch := range n.subs {
		close(ch)
	}
	clear(n.subs)
}
