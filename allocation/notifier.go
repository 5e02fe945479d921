package allocation

import (
	"context"
	"event-registration/model"
)

// Notifier is told about registration changes after they are committed.
type Notifier interface {
	Notify(ctx context.Context, kind model.NotificationKind, event model.Event, registration model.Registration) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, model.NotificationKind, model.Event, model.Registration) error {
	return nil
}

type notice struct {
	kind         model.NotificationKind
	event        model.Event
	registration model.Registration
}

type outbox struct {
	notices []notice
}

func (o *outbox) add(kind model.NotificationKind, event model.Event, registration model.Registration) {
	o.notices = append(o.notices, notice{kind: kind, event: event, registration: registration})
}
