package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/raymondjoseph02/news-today/cmd/server/factory"
	"github.com/raymondjoseph02/news-today/internal/app"
	"github.com/raymondjoseph02/news-today/internal/infra/tracing"
	transport "github.com/raymondjoseph02/news-today/internal/transport/http"
	"github.com/raymondjoseph02/news-today/pkg/config"
	"go.uber.org/fx"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	fx.New(
		fx.Provide(
			// Config
			config.Load,

			// Infrastructure
			factory.NewResultCache,
			factory.NewSessionStore,
			factory.NewArticleStore,

			// Providers
			factory.NewFetcher,

			// Services
			factory.NewUISession,
			factory.NewNewsService,
			factory.NewController,
			factory.NewDetailService,

			// HTTP Server
			factory.NewHTTPHandler,
			transport.NewHTTPServer,
		),
		fx.Invoke(
			SetupTracer,
			ProbeUpstream,
			RegisterHooks,
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func RegisterHooks(lc fx.Lifecycle, controller *app.Controller) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			controller.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			controller.Close()
			return nil
		},
	})
}

func SetupTracer(lc fx.Lifecycle) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, "news-today")
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

// ProbeUpstream logs upstream reachability once at startup. Never fatal:
// a dead provider surfaces as an error state in the UI, not a crash.
func ProbeUpstream(cfg *config.Config) {
	probe := app.NewReadinessProbe(cfg.Sources)
	probe.Check(context.Background())
}

func StartServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting HTTP server", "address", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
