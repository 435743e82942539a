package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/chat-ping/internal/http/health"
	"github.com/janisto/chat-ping/internal/http/site"
	"github.com/janisto/chat-ping/internal/http/v1/routes"
	"github.com/janisto/chat-ping/internal/platform/config"
	applog "github.com/janisto/chat-ping/internal/platform/logging"
	"github.com/janisto/chat-ping/internal/platform/metrics"
	appmiddleware "github.com/janisto/chat-ping/internal/platform/middleware"
	"github.com/janisto/chat-ping/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func newRouter(cfg config.Config, m *metrics.Metrics) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath, "/static/"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))
	router.Method(http.MethodGet, "/metrics", m.Handler())
	site.Register(router, cfg.StaticDir)

	humaCfg := huma.DefaultConfig("Chat API", Version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)
	addCBORContent(api)
	routes.Register(api, m)

	return router
}

// addCBORContent advertises application/cbor next to every JSON body in the OpenAPI document.
func addCBORContent(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}

func main() {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "config load failed", err)
	}
	applog.LogInfo(ctx, "config loaded",
		zap.String("addr", cfg.Addr()),
		zap.String("staticDir", cfg.StaticDir),
		zap.Bool("geminiKey", cfg.HasGeminiKey()),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, metrics.New()),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", srv.Addr), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		_ = applog.Sync()
		os.Exit(1)
	case <-stop:
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(ctx, "server exited")
}
