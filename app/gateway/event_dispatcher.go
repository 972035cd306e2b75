package gateway

import (
	"log/slog"
	"sync"

	"session-service/app/domain"
	"session-service/app/port"
)

const (
	// queue depth between emitters and the dispatch goroutine
	dispatchQueueSize = 64
	// per-subscriber channel buffer
	subscriberBufferSize = 32
)

// eventDispatcher fans auth events out to subscribers. All events pass through
// a single dispatch goroutine, so every subscriber observes them in emission
// order. A subscriber that stops draining its channel loses events rather than
// stalling the dispatcher.
type eventDispatcher struct {
	queue  chan domain.AuthEvent
	logger *slog.Logger

	mu   sync.Mutex
	subs map[*eventSubscription]struct{}

	closeOnce sync.Once
	done      chan struct{}
}

func newEventDispatcher(logger *slog.Logger) *eventDispatcher {
	d := &eventDispatcher{
		queue:  make(chan domain.AuthEvent, dispatchQueueSize),
		logger: logger.With("component", "event_dispatcher"),
		subs:   make(map[*eventSubscription]struct{}),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Subscribe registers a new subscriber. No synthetic initial event is emitted;
// subscribers only see transitions that happen after they join.
func (d *eventDispatcher) Subscribe() port.Subscription {
	sub := &eventSubscription{
		ch:         make(chan domain.AuthEvent, subscriberBufferSize),
		dispatcher: d,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs[sub] = struct{}{}
	return sub
}

// Emit hands an event to the dispatch goroutine, preserving call order
func (d *eventDispatcher) Emit(event domain.AuthEvent) {
	select {
	case d.queue <- event:
	case <-d.done:
	}
}

// Close stops the dispatch goroutine and closes all subscriber channels
func (d *eventDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)

		d.mu.Lock()
		defer d.mu.Unlock()
		for sub := range d.subs {
			delete(d.subs, sub)
			close(sub.ch)
		}
	})
}

func (d *eventDispatcher) run() {
	for {
		select {
		case event := <-d.queue:
			d.fanOut(event)
		case <-d.done:
			return
		}
	}
}

func (d *eventDispatcher) fanOut(event domain.AuthEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for sub := range d.subs {
		select {
		case sub.ch <- event:
		default:
			d.logger.Warn("subscriber buffer full, dropping auth event", "event", event.Type)
		}
	}
}

func (d *eventDispatcher) remove(sub *eventSubscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.subs[sub]; ok {
		delete(d.subs, sub)
		close(sub.ch)
	}
}

// eventSubscription implements port.Subscription
type eventSubscription struct {
	ch         chan domain.AuthEvent
	dispatcher *eventDispatcher
}

func (s *eventSubscription) Events() <-chan domain.AuthEvent {
	return s.ch
}

// Unsubscribe detaches from the dispatcher and closes the event channel.
// Safe to call more than once.
func (s *eventSubscription) Unsubscribe() {
	s.dispatcher.remove(s)
}
