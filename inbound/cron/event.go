package cron

import (
	"context"
	"event-registration/allocation"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/vars"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log/slog"
	"time"
)

type EventCron struct {
	Cfg     *viper.Viper
	Cache   *redis.Client
	Catalog *allocation.Catalog
}

func (in EventCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.event.refresh.interval"))
	defer refreshTicker.Stop()

	in.refresh(ctx)

	slog.Info("event cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("event cron stopped")
			return
		}
	}
}

// refresh closes events whose start time passed and publishes the remaining
// open events to the in-process snapshot.
func (in EventCron) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.event.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing events", traceIdAttr)

	closed, err := in.Catalog.CloseStartedEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to close started events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	if len(closed) > 0 {
		keys := make([]string, 0, len(closed))
		for _, event := range closed {
			keys = append(keys, fmt.Sprintf(constant.EventCountsKey, event.ID))
		}

		if err := in.Cache.Del(ctx, keys...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to drop cached counts of closed events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	events, err := in.Catalog.OpenEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list open events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	vars.SetOpenEvents(events)

	slog.DebugContext(ctx, "events refreshed successfully", traceIdAttr, slog.Int("open", len(events)))
}
