package cmd

import (
	"context"
	"event-registration/allocation"
	"event-registration/common/constant"
	queue "event-registration/common/jetstream"
	"event-registration/common/otel"
	"event-registration/outbound/notify"
	"event-registration/outbound/repository"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"log"
	"log/slog"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s",
		username, password, host, port, database, timezone)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	config.MaxConns = int32(maxConn)
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createStreamWorkQueue(ctx context.Context, js jetstream.JetStream) jetstream.Stream {
	st, err := queue.CreateQueueStream(ctx, js)
	if err != nil {
		panic(err)
	}

	return st
}

// newTracerProvider installs the OTLP exporter when otel.endpoint is set.
// The returned shutdown flushes pending spans.
func newTracerProvider(ctx context.Context, cfg *viper.Viper, service string) func() {
	endpoint := cfg.GetString("otel.endpoint")
	if endpoint == "" {
		return func() {}
	}

	tp, err := otel.NewTracerProvider(ctx, otel.TracerConfig{
		ServiceName: fmt.Sprintf("%s-%s", cfg.GetString("otel.service_name"), service),
		Endpoint:    endpoint,
		SampleRatio: cfg.GetFloat64("otel.sample_ratio"),
	})
	if err != nil {
		log.Fatalln("unable to init tracer provider", err)
	}

	return func() {
		shutdown(tp)
	}
}

func shutdown(tp *sdktrace.TracerProvider) {
	if err := tp.Shutdown(context.Background()); err != nil {
		slog.Error("failed to shutdown tracer provider", slog.Any(constant.LogFieldErr, err))
	}
}

func newOrchestrator(cfg *viper.Viper, db *pgxpool.Pool, js jetstream.JetStream) *allocation.Orchestrator {
	return allocation.NewOrchestrator(
		repository.NewStore(db),
		notify.RegistrationPublisher{Publisher: js},
		allocation.Config{
			AutoPromote: cfg.GetBool("allocation.auto_promote"),
			Retry: allocation.RetryConfig{
				MaxRetries:      cfg.GetUint64("allocation.retry.max_retries"),
				InitialInterval: cfg.GetDuration("allocation.retry.initial_interval"),
				MaxInterval:     cfg.GetDuration("allocation.retry.max_interval"),
			},
		},
	)
}
