package cmd

import (
	"context"
	"event-registration/common/constant"
	queue "event-registration/common/jetstream"
	"event-registration/inbound/event"
	emailOutbound "event-registration/outbound/email"
)

func runQueueEmailCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracerProvider(ctx, cfg, "email")
	defer stopTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)

	outbound := &emailOutbound.EmailOutbound{Cfg: cfg}
	outbound.Init()

	emailEvent := event.EmailEvent{
		Sender:  outbound,
		Timeout: cfg.GetDuration("queue.email.timeout"),
	}

	consume(ctx, cfg, js, "email", constant.EmailWildcard, map[string]queue.Handler{
		constant.SubjectSendEmail: emailEvent.SendEmailHandler,
	})
}
