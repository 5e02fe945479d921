package jetstream

import (
	"context"
	"event-registration/common/constant"
	"github.com/nats-io/nats.go/jetstream"
	"log/slog"
	"time"
)

func CreateQueueStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	cfg := jetstream.StreamConfig{
		Name:       constant.QueueStreamName,
		Retention:  jetstream.WorkQueuePolicy,
		Subjects:   []string{constant.AllWildcard},
		MaxBytes:   -1,
		Duplicates: constant.QueueDuplicateWindow,
	}

	return js.CreateOrUpdateStream(ctx, cfg)
}

// Handler processes one message. A returned error naks the message so it is
// redelivered after NakDelay.
type Handler func(ctx context.Context, data []byte) error

type ConsumerConfig struct {
	Durable       string
	FilterSubject string
	MaxDeliver    int
	AckWait       time.Duration
	NakDelay      time.Duration
	Handlers      map[string]Handler
}

// Consume pulls messages from the queue stream until ctx is done, routing
// each one to the handler registered for its subject.
func Consume(ctx context.Context, st jetstream.Stream, cfg ConsumerConfig) error {
	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       cfg.Durable,
		FilterSubject: cfg.FilterSubject,
		MaxDeliver:    cfg.MaxDeliver,
		AckWait:       cfg.AckWait,
	})
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if err != nil && err != jetstream.ErrMsgIteratorClosed {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				handler, ok := cfg.Handlers[msg.Subject()]
				if !ok {
					slog.WarnContext(ctx, "no handler for subject", slog.String("subject", msg.Subject()))
					msg.Term()
					continue
				}

				if err := handler(ctx, msg.Data()); err != nil {
					msg.NakWithDelay(cfg.NakDelay)
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
				}
			}
		}
	}()

	slog.InfoContext(ctx, "queue consumer started", slog.String("durable", cfg.Durable))

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, "queue consumer stopped", slog.String("durable", cfg.Durable))

	return nil
}
