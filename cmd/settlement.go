package cmd

import (
	"context"
	"event-registration/common/constant"
	queue "event-registration/common/jetstream"
	"event-registration/inbound/event"
)

func runQueueSettlementCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracerProvider(ctx, cfg, "settlement")
	defer stopTracer()

	db := newDb(cfg)
	defer db.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)

	settlementEvent := event.SettlementEvent{
		Settler: newOrchestrator(cfg, db, js),
		Timeout: cfg.GetDuration("queue.settlement.timeout"),
	}

	consume(ctx, cfg, js, "settlement", constant.PaymentWildcard, map[string]queue.Handler{
		constant.SubjectPaymentCallback: settlementEvent.PaymentCallbackHandler,
	})
}
