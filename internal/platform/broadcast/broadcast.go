// Package broadcast provides a synchronous, in-process publish/subscribe
// channel that fans each published value out to every current subscriber.
//
//	b := broadcast.New[[]todo.ToDo]()
//	sub := b.Subscribe(func(v []todo.ToDo) { render(v) })
//	defer sub.Unsubscribe()
//	b.Publish(snapshot)
//
// Publish does not return until every subscriber registered at the moment
// the publish started has been called, in registration order. Subscribers
// added while a publish is running only see later values.
package broadcast

import "sync"

// Broadcast is a single-producer, multi-consumer channel of values of type T.
// It is safe for concurrent use. Callbacks run on the publishing goroutine,
// outside the subscriber-list lock, so they may subscribe or unsubscribe.
type Broadcast[T any] struct {
	mu      sync.RWMutex
	subs    []*Subscription
	fns     map[*Subscription]func(T)
	latest  T
	hasLast bool
	closed  bool
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Unsubscribe removes the callback. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// New creates a broadcast with no subscribers and no published value.
func New[T any]() *Broadcast[T] {
	return &Broadcast[T]{
		fns: make(map[*Subscription]func(T)),
	}
}

// Subscribe registers fn to receive every subsequently published value.
// Values published before the call are not replayed; use Latest for that.
// A nil fn, or a closed broadcast, yields an inert subscription.
func (b *Broadcast[T]) Subscribe(fn func(T)) *Subscription {
	sub := &Subscription{}
	sub.cancel = func() { b.remove(sub) }

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || fn == nil {
		return sub
	}
	b.subs = append(b.subs, sub)
	b.fns[sub] = fn
	return sub
}

// Publish records v as the latest value and delivers it to the subscribers
// present when the call started, in registration order.
func (b *Broadcast[T]) Publish(v T) {
	b.mu.Lock()
	b.latest = v
	b.hasLast = true
	fns := make([]func(T), 0, len(b.subs))
	for _, s := range b.subs {
		fns = append(fns, b.fns[s])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Latest returns the most recently published value. The boolean is false
// when nothing has been published yet.
func (b *Broadcast[T]) Latest() (T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.hasLast
}

// Len returns the number of registered subscribers.
func (b *Broadcast[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops every subscriber. Later Subscribe calls return inert
// subscriptions; Publish still records the latest value.
func (b *Broadcast[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = nil
	clear(b.fns)
}

// Closed reports whether Close has been called.
func (b *Broadcast[T]) Closed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

func (b *Broadcast[T]) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.fns[sub]; !ok {
		return
	}
	delete(b.fns, sub)
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			break
		}
	}
}
