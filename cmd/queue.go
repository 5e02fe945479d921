package cmd

import (
	"context"
	queue "event-registration/common/jetstream"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"
	"log"
)

// consume attaches a durable consumer named after the queue and blocks until
// ctx is done. Delivery settings come from queue.<name>.*.
func consume(ctx context.Context, cfg *viper.Viper, js jetstream.JetStream, name, filterSubject string, handlers map[string]queue.Handler) {
	st := createStreamWorkQueue(ctx, js)

	key := func(k string) string {
		return fmt.Sprintf("queue.%s.%s", name, k)
	}

	err := queue.Consume(ctx, st, queue.ConsumerConfig{
		Durable:       "consumer:" + name,
		FilterSubject: filterSubject,
		MaxDeliver:    cfg.GetInt(key("max_deliver")),
		AckWait:       cfg.GetDuration(key("ack_wait")),
		NakDelay:      cfg.GetDuration(key("nak_delay")),
		Handlers:      handlers,
	})
	if err != nil {
		log.Fatalln("failed to consume queue", name, err)
	}
}
