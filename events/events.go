// Package events implements the notification channel documents expose and the
// one-shot wait that bridges repeated callbacks into a single awaited result.
package events

import "time"

// Event is a single notification delivered to subscribed handlers.
type Event struct {
	// Name is the event type, e.g. "click" or "adopt".
	Name string

	// Payload carries event-specific data. May be nil.
	Payload any

	// Time is when the event was emitted.
	Time time.Time
}

// Handler receives events for one subscription.
type Handler func(Event)

// Target is anything that can hold event subscriptions. *Emitter implements
// it; dom.Document delegates to its emitter.
type Target interface {
	Subscribe(name string, h Handler) *Subscription
	Unsubscribe(s *Subscription)
}
