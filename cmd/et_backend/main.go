package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	coreservices "github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/handlers"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/SscSPs/expense_tracker_app/internal/platform/amqp"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/platform/database"
	"github.com/SscSPs/expense_tracker_app/internal/platform/mailer"
	"github.com/SscSPs/expense_tracker_app/internal/platform/media"
	"github.com/SscSPs/expense_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

const shutdownTimeout = 15 * time.Second

// @title Expense Tracker API
// @version 1.0
// @description Personal finance tracker: expenses, incomes and their catalogs.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	integrations, cleanup, err := buildIntegrations(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize integrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := coreservices.NewServiceContainer(cfg, repos, integrations)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	router, err := newRouter(cfg, logger, serviceContainer, posthogClient)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func newRouter(cfg *config.Config, logger *slog.Logger, svc *services.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	if err := handlers.RegisterRoutes(r, cfg, svc, posthogClient); err != nil {
		return nil, err
	}
	return r, nil
}

// buildIntegrations wires the mail transport and the receipt store. The
// returned cleanup closes whatever was opened.
func buildIntegrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) (coreservices.Integrations, func(), error) {
	var integrations coreservices.Integrations
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var publisher mailer.Publisher
	if cfg.MailTransport == mailer.TransportAMQP {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPMailQueue)
		if err != nil {
			return integrations, cleanup, err
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close AMQP client", slog.String("error", err.Error()))
			}
		})
		publisher = client
		logger.Info("Outbound mail queued over AMQP", slog.String("queue", cfg.AMQPMailQueue))
	}

	m, err := mailer.New(cfg, publisher)
	if err != nil {
		return integrations, cleanup, err
	}
	integrations.Mailer = m

	if cfg.MediaBucket != "" {
		var opts []option.ClientOption
		if cfg.MediaCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.MediaCredentialsFile))
		}
		store, err := media.NewGCSStore(ctx, cfg.MediaBucket, opts...)
		if err != nil {
			return integrations, cleanup, err
		}
		integrations.Media = store
		logger.Info("Receipt uploads enabled", slog.String("bucket", cfg.MediaBucket))
	}

	if cfg.UploadTmpDir == "" {
		cfg.UploadTmpDir = os.TempDir()
	}
	if err := os.MkdirAll(cfg.UploadTmpDir, 0o750); err != nil {
		return integrations, cleanup, err
	}

	return integrations, cleanup, nil
}
