package cmd

import (
	"context"
	"event-registration/allocation"
	inboundCron "event-registration/inbound/cron"
	inboundHttp "event-registration/inbound/http"
	"fmt"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"log"
	"log/slog"
	"net/http"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracerProvider(ctx, cfg, "http")
	defer stopTracer()

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, js)

	orchestrator := newOrchestrator(cfg, db, js)
	catalog := allocation.NewCatalog(orchestrator.Store)
	feed := allocation.Feed{Store: orchestrator.Store}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(cfg.GetDuration("server.request_timeout"))

	inboundHttp.RegisterRegistrationHttp(router, cfg, orchestrator, cacheClient, validate)
	inboundHttp.RegisterPaymentHttp(router, js, validate)
	inboundHttp.RegisterAdminHttp(router, cfg, orchestrator, catalog, feed, cacheClient, validate)
	inboundHttp.RegisterBanHttp(router, catalog, validate)

	eventCron := &inboundCron.EventCron{
		Cfg:     cfg,
		Cache:   cacheClient,
		Catalog: catalog,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(router)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		eventCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
