package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordcloud/internal/adapter/postgres"
	cloudrepo "github.com/heartmarshall/wordcloud/internal/adapter/postgres/wordcloud"
	"github.com/heartmarshall/wordcloud/internal/auth"
	"github.com/heartmarshall/wordcloud/internal/config"
	"github.com/heartmarshall/wordcloud/internal/service/wordcloud"
	"github.com/heartmarshall/wordcloud/internal/transport/middleware"
	"github.com/heartmarshall/wordcloud/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Options control one server run.
type Options struct {
	// Migrate applies pending migrations before serving.
	Migrate bool
}

// Run is the server entry point. It wires configuration, logger, database,
// services and HTTP transport, then serves until ctx is cancelled and
// shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if opts.Migrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Repositories and services.
	clouds := cloudrepo.New(pool, postgres.NewTxManager(pool))
	cloudService := wordcloud.NewService(logger, clouds, cfg.WordCloud)
	jwtManager := auth.NewJWTManager(cfg.Auth)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit, rateLimitCleanupInterval)
	defer limiter.Stop()

	api := middleware.Chain(
		middleware.Auth(jwtManager),
		limiter.Middleware(),
	)
	router := rest.NewRouter(
		rest.NewWordCloudHandler(cloudService, logger, cfg.WordCloud.MaxTextBytes, cfg.WordCloud.MaxBatchDocuments),
		rest.NewHealthHandler(BuildVersion(), map[string]rest.Checker{"database": pool}),
		api,
	)
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics,
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
