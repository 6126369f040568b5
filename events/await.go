package events

import "context"

// AwaitEvent subscribes to name on target and blocks until the first event
// delivered after subscription, or until ctx is done. The subscription is
// removed on every exit path, so a cancelled wait leaves nothing behind.
// Events that fired before the call are not observed; events after the first
// resolve nothing.
func AwaitEvent(ctx context.Context, target Target, name string) (Event, error) {
	if target == nil {
		return Event{}, ErrNilTarget
	}
	if name == "" {
		return Event{}, ErrNoEventName
	}

	ch := make(chan Event, 1)
	sub := target.Subscribe(name, func(ev Event) {
		select {
		case ch <- ev:
		default:
			// already resolved
		}
	})
	defer target.Unsubscribe(sub)

	select {
	case ev := <-ch:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}
