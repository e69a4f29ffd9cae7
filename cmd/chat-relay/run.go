package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"l4d-chat-relay/internal/config"
	"l4d-chat-relay/internal/handler"
	"l4d-chat-relay/internal/hlstats"
	"l4d-chat-relay/internal/messaging"
	"l4d-chat-relay/internal/middleware"
	"l4d-chat-relay/internal/observability"
	"l4d-chat-relay/internal/relay"
	"l4d-chat-relay/internal/telegram"
	"l4d-chat-relay/internal/watermark"
	"l4d-chat-relay/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the stats page and deliver new chat messages.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		return runRelay(cmd.Context(), cfg)
	},
}

// loadConfig reads configuration and initialises logging from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	observability.InitLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	return cfg, nil
}

func runRelay(ctx context.Context, cfg *config.Config) error {
	slog.Info("starting chat relay",
		slog.String("version", version),
		slog.String("environment", cfg.Environment),
		slog.String("base_url", cfg.BaseURL))

	shutdownTracing, err := observability.InitTracing(cfg.OTELEndpoint, serviceName, version)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer shutdownTracing()

	store := watermark.NewFileStore(cfg.WatermarkFile)
	last, err := store.Get()
	if err != nil {
		return fmt.Errorf("watermark %s is not usable, seed it with `chat-relay watermark set`: %w",
			store.Path(), err)
	}
	slog.Info("loaded watermark",
		slog.String("path", store.Path()),
		slog.Time("last_date", last))

	source := hlstats.NewClient(cfg.BaseURL, cfg.FetchTimeout)

	notifier, err := telegram.New(cfg.Token, cfg.GroupID, cfg.LiveChatID)
	if err != nil {
		return err
	}

	rl := relay.New(source, store, notifier, relay.Config{
		PollInterval: cfg.PollInterval,
		SendInterval: cfg.SendInterval,
	})

	hub := websocket.NewHub()
	rl.AddSink("feed", hub)

	// Left nil when no broker is configured so readiness reports it disabled.
	var broker handler.Connection
	if cfg.RabbitMQURL != "" {
		rmqCtx, rmqCancel := context.WithTimeout(ctx, 60*time.Second)
		rmq, err := messaging.NewRabbitMQWithRetry(rmqCtx, cfg.RabbitMQURL)
		rmqCancel()
		if err != nil {
			return err
		}
		defer rmq.Close()

		rl.AddSink("rabbitmq", rmq)
		broker = rmq
		slog.Info("connected to rabbitmq")
	}

	status := handler.NewStatusHandler(store, rl, source, hub)
	notifier.HandleStatus(func(context.Context) string {
		return status.Text()
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ignoreCanceled(hub.Run(ctx))
	})

	g.Go(func() error {
		notifier.Start(ctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("relay loop started",
			slog.Duration("poll_interval", cfg.PollInterval),
			slog.Duration("send_interval", cfg.SendInterval))
		return ignoreCanceled(rl.Run(ctx))
	})

	if cfg.HTTPAddr != "" {
		srv := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      newRouter(store, source, broker, status, hub),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		g.Go(func() error {
			slog.Info("status server listening", slog.String("addr", cfg.HTTPAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("status server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	slog.Info("chat relay stopped", slog.Any("stats", rl.Stats()))
	return err
}

func newRouter(store handler.WatermarkReader, source handler.CircuitReporter, broker handler.Connection,
	status *handler.StatusHandler, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Metrics())

	r.Get("/health", handler.Health)
	r.Get("/health/ready", handler.Ready(store, source, broker))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", status.Get)
	})

	r.Get("/ws/feed", handler.NewFeedHandler(hub).HandleConnection)

	return r
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
