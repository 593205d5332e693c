// Package live implements the publish/subscribe feed that carries full-snapshot
// note events and image-directory events to subscribers.
package live

import (
	"sync/atomic"
)

// Event types carried by the feed.
const (
	EventNotesSnapshot = "notes.snapshot"
	EventImageAdded    = "image.added"
	EventImageRemoved  = "image.removed"
)

// Event is a single feed emission. For EventNotesSnapshot, Data holds the
// full ordered note collection; observers never see a partial write because
// snapshots are only published after a mutation has committed.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Feed manages subscriber channels and broadcasts events.
//
// Concurrency model: a single internal event loop (goroutine) owns mutable
// state (subscriber set + last snapshot). Public methods communicate with
// this loop through channels, so no mutexes are required.
type Feed struct {
	subscribeCh   chan chan Event
	unsubscribeCh chan chan Event
	publishCh     chan Event
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewFeed creates a feed and starts its event loop.
func NewFeed() *Feed {
	f := &Feed{
		subscribeCh:   make(chan chan Event),
		unsubscribeCh: make(chan chan Event),
		publishCh:     make(chan Event, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go f.run()
	return f
}

func (f *Feed) run() {
	defer close(f.stopped)

	subscribers := make(map[chan Event]struct{})
	var last *Event // retained notes snapshot, replayed to new subscribers

	send := func(ch chan Event, ev Event) {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full; skip to avoid blocking the loop.
			// The next snapshot carries the complete state anyway.
		}
	}

	for {
		select {
		case <-f.stopCh:
			for ch := range subscribers {
				close(ch)
			}
			return

		case ch := <-f.subscribeCh:
			subscribers[ch] = struct{}{}
			if last != nil {
				send(ch, *last)
			}

		case ch := <-f.unsubscribeCh:
			if _, ok := subscribers[ch]; ok {
				delete(subscribers, ch)
				close(ch)
			}

		case ev := <-f.publishCh:
			if ev.Type == EventNotesSnapshot {
				retained := ev
				last = &retained
			}
			for ch := range subscribers {
				send(ch, ev)
			}

		case resp := <-f.countReqCh:
			resp <- len(subscribers)
		}
	}
}

// Close gracefully stops the loop and closes all subscriber channels.
func (f *Feed) Close() {
	if f.closed.CompareAndSwap(false, true) {
		close(f.stopCh)
	}
	<-f.stopped
}

// Subscribe adds a subscriber and returns its channel. If a notes snapshot
// has been published before, it is replayed immediately so new subscribers
// start from the current state.
func (f *Feed) Subscribe() chan Event {
	ch := make(chan Event, 64)
	if f.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case f.subscribeCh <- ch:
	case <-f.stopped:
		close(ch)
	}

	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (f *Feed) Unsubscribe(ch chan Event) {
	if f.closed.Load() {
		return
	}
	select {
	case f.unsubscribeCh <- ch:
	case <-f.stopped:
	}
}

// SubscriberCount returns the number of active subscribers.
func (f *Feed) SubscriberCount() int {
	if f.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case f.countReqCh <- resp:
	case <-f.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-f.stopped:
		return 0
	}
}

// Publish broadcasts an event to all subscribers.
func (f *Feed) Publish(ev Event) {
	if f.closed.Load() {
		return
	}
	select {
	case f.publishCh <- ev:
	case <-f.stopped:
	}
}
