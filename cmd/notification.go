package cmd

import (
	"context"
	"event-registration/common/constant"
	queue "event-registration/common/jetstream"
	"event-registration/inbound/event"
	"event-registration/model"
	"event-registration/outbound/notify"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runQueueNotificationCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracerProvider(ctx, cfg, "notification")
	defer stopTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)

	lang, err := language.Parse(cfg.GetString("email.language"))
	if err != nil {
		lang = language.Indonesian
	}

	notificationEvent := event.NotificationEvent{
		Publisher: js,
		Printer:   message.NewPrinter(lang),
		Timeout:   cfg.GetDuration("queue.notification.timeout"),
	}

	handlers := make(map[string]queue.Handler)
	for _, kind := range []model.NotificationKind{
		model.NotificationCreated,
		model.NotificationPromoted,
		model.NotificationSettled,
		model.NotificationFailed,
		model.NotificationCancelled,
	} {
		handlers[notify.Subject(kind)] = notificationEvent.RegistrationHandler
	}

	consume(ctx, cfg, js, "notification", constant.RegistrationWildcard, handlers)
}
