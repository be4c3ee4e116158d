package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/tinyapp/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/tinyapp/internal/config"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/internal/usecase"
	"github.com/vadimbarashkov/tinyapp/pkg/codegen"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/tinyapp/internal/adapter/delivery/http"
)

func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("url-shortener", httplog.Options{
		Writer:          os.Stdout,
		JSON:            cfg.Log.JSON,
		Concise:         cfg.Log.Concise,
		LogLevel:        cfg.Log.SlogLevel(),
		RequestHeaders:  cfg.Env != config.EnvProd,
		QuietDownRoutes: []string{"/api/v1/ping"},
		QuietDownPeriod: 10 * time.Second,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// NewHandler assembles the in-memory stores, use cases and router.
func NewHandler(cfg *config.Config, logger *httplog.Logger) (http.Handler, error) {
	const op = "app.NewHandler"

	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	codeGen := codegen.New(cfg.CodeGenerator)

	urlUseCase := usecase.NewURLUseCase(
		codeGen,
		memory.NewURLRepository(),
		usecase.WithShortCodeLength(cfg.ShortCodeLength),
		usecase.WithVisitorIDLength(cfg.VisitorIDLength),
		usecase.WithURLMaxRetries(cfg.MaxRetries),
	)

	userUseCase := usecase.NewUserUseCase(
		codeGen,
		memory.NewUserRepository(),
		usecase.WithUserIDLength(cfg.UserIDLength),
		usecase.WithUserMaxRetries(cfg.MaxRetries),
		usecase.WithBcryptCost(cfg.BcryptCost),
	)

	return delivery.NewRouter(logger, sessions, urlUseCase, userUseCase), nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg)

	handler, err := NewHandler(cfg, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        handler,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
