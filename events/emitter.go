package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Subscription identifies one registered handler. It is the token handed back
// to Unsubscribe; handler functions themselves are not comparable.
type Subscription struct {
	name string
	h    Handler
}

// Emitter is a minimal subscribe/notify channel. Safe for concurrent use.
type Emitter struct {
	mu     sync.Mutex
	subs   map[string][]*Subscription
	logger *zap.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger routes emitter diagnostics to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEmitter creates an emitter with no subscriptions.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{
		subs:   make(map[string][]*Subscription),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Subscribe registers h for events with the given name.
func (e *Emitter) Subscribe(name string, h Handler) *Subscription {
	if h == nil {
		panic("events: subscribe with nil handler")
	}
	s := &Subscription{name: name, h: h}
	e.mu.Lock()
	e.subs[name] = append(e.subs[name], s)
	e.mu.Unlock()
	return s
}

// Unsubscribe removes s. Unknown or already-removed subscriptions are no-ops.
func (e *Emitter) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.subs[s.name]
	for i, cur := range list {
		if cur == s {
			e.subs[s.name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of handlers registered for name.
func (e *Emitter) SubscriberCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs[name])
}

// HasSubscribers reports whether any handler is registered for name.
func (e *Emitter) HasSubscribers(name string) bool {
	return e.SubscriberCount(name) > 0
}

// Emit delivers ev to every handler subscribed under ev.Name, in subscription
// order. Delivery is synchronous on the caller's goroutine; handlers that
// unsubscribe mid-delivery still receive the current event.
func (e *Emitter) Emit(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	e.mu.Lock()
	list := append([]*Subscription(nil), e.subs[ev.Name]...)
	e.mu.Unlock()

	e.logger.Debug("emit", zap.String("event", ev.Name), zap.Int("handlers", len(list)))
	for _, s := range list {
		s.h(ev)
	}
}
