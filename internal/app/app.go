package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/boring/internal/config"
	"github.com/ferdiebergado/boring/internal/middleware"
	"github.com/ferdiebergado/boring/internal/pkg/logging"
	"github.com/ferdiebergado/boring/internal/platform/llm"
	"github.com/ferdiebergado/boring/internal/platform/markdown"
	"github.com/ferdiebergado/boring/internal/platform/router"
	"github.com/ferdiebergado/boring/internal/platform/static"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

const (
	envAppEnv    = "ENV"
	envLogLevel  = "LOG_LEVEL"
	envGeminiKey = "GEMINI_API_KEY"
)

type App struct {
	server          *http.Server
	config          *config.Options
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	validator       validation.Validator
	router          router.Router
	renderer        markdown.Renderer
	generator       llm.Generator
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	files := static.New(a.config.Static.Dir, a.config.Static.Index)
	mountRoutes(a.router, a.newAPI(), files)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Options, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		validator:       provider.Validator,
		router:          provider.Router,
		renderer:        provider.Renderer,
		generator:       provider.Generator,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}

// Middlewares returns the stack every request passes through, outermost
// first.
func Middlewares(cfg *config.Options) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.Server.AllowedOrigin),
		middleware.ContextGuard,
	}
}

// Run loads the environment and config, serves until ctx is done, then shuts
// the server down gracefully.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv(envAppEnv) != "production" {
		if err := env.Load(".env"); err != nil {
			slog.Warn("No .env file loaded.", "reason", err)
		}
	}

	logging.SetupLogger(os.Getenv(envAppEnv), os.Getenv(envLogLevel), os.Stdout)

	opts, err := config.Load("config.json")
	if err != nil {
		return err
	}

	provider, err := newProvider(ctx, opts, os.Getenv(envGeminiKey))
	if err != nil {
		return err
	}
	if provider.Generator == nil {
		slog.Info("GEMINI_API_KEY is not set, /api/chat is disabled.")
	}

	api := New(opts, provider, Middlewares(opts))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
