package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	hhttp "knowbase/internal/handler/http"
	harticle "knowbase/internal/handler/http/article"
	hauth "knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/requestid"
	pgRepo "knowbase/internal/infra/adapter/persistence/postgres"
	"knowbase/internal/infra/db"
	"knowbase/internal/infra/summarizer"
	"knowbase/internal/observability/logging"
	"knowbase/internal/observability/tracing"
	appconfig "knowbase/internal/pkg/config"
	"knowbase/internal/resilience/circuitbreaker"
	artUC "knowbase/internal/usecase/article"
	summaryUC "knowbase/internal/usecase/summary"
	pkgconfig "knowbase/pkg/config"
)

func main() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := loadConfig(logger)
	secret := loadJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(cfg, logger, database, secret, version)

	runServer(cfg, logger, handler, version)
}

// loadConfig loads the application configuration, optionally from the YAML
// file named by CONFIG_FILE.
func loadConfig(logger *slog.Logger) *appconfig.Config {
	path := pkgconfig.GetEnvString("CONFIG_FILE", "")
	cfg, err := appconfig.Load(path)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// loadJWTSecret validates the JWT_SECRET environment variable.
// The server refuses to start with a missing or weak signing secret.
func loadJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, use cases, and handlers into the full
// HTTP handler with the middleware chain applied.
func setupServer(cfg *appconfig.Config, logger *slog.Logger, database *sql.DB, secret []byte, version string) http.Handler {
	// Database queries go through a circuit breaker so a failing database
	// sheds load fast instead of piling up blocked requests.
	artSvc := artUC.Service{Repo: pgRepo.NewArticleRepo(circuitbreaker.NewDBCircuitBreaker(database))}

	provider, err := summarizer.FromEnv()
	if err != nil {
		logger.Error("failed to configure summarizer", slog.Any("error", err))
		os.Exit(1)
	}
	sumSvc := summaryUC.NewService(provider, summaryUC.DefaultProviderTimeout, logger)

	verifier := hauth.NewVerifier(secret)

	mux := http.NewServeMux()

	// Operational endpoints stay outside authentication.
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	harticle.Register(mux, verifier, artSvc, sumSvc, logger)

	return applyMiddleware(cfg, logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): request ID, tracing, recovery, logging,
// metrics, rate limiting, body limit, per-request timeout.
func applyMiddleware(cfg *appconfig.Config, logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.Timeout(cfg.Server.RequestTimeout.Std())(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)

	if cfg.RateLimit.Enabled {
		limiter := hhttp.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window.Std())
		chain = limiter.Limit(chain)
		logger.Info("rate limiting enabled",
			slog.Int("limit", cfg.RateLimit.Limit),
			slog.Duration("window", cfg.RateLimit.Window.Std()))
	} else {
		logger.Info("rate limiting disabled")
	}

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal,
// then drains in-flight requests within the configured timeout.
func runServer(cfg *appconfig.Config, logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout.Std(),
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
