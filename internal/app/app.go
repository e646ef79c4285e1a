package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StageBooker/internal/auth"
	"github.com/stpnv0/StageBooker/internal/config"
	"github.com/stpnv0/StageBooker/internal/handler"
	"github.com/stpnv0/StageBooker/internal/middleware"
	"github.com/stpnv0/StageBooker/internal/notification"
	"github.com/stpnv0/StageBooker/internal/repository"
	"github.com/stpnv0/StageBooker/internal/router"
	"github.com/stpnv0/StageBooker/internal/scheduler"
	"github.com/stpnv0/StageBooker/internal/service"
	"github.com/stpnv0/StageBooker/internal/tracing"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "StageBooker"
	migrationsDir = "migrations"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	db             *dbpg.DB
	publisher      *notification.BrokerPublisher
	shutdownTracer tracing.ShutdownFunc
	httpServer     *http.Server
	scheduler      *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.shutdownTracer, err = tracing.Init(
		context.Background(),
		cfg.Tracing.ServiceName,
		cfg.Tracing.Endpoint,
		cfg.Gin.Mode,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
		logger.Int("retry_attempts", a.cfg.Postgres.RetryAttempts),
	)

	return nil
}

func (a *App) initServices() error {
	strategy := repository.NewStrategy(a.cfg.Postgres.RetryAttempts)
	profileRepo := repository.NewProfileRepo(a.db, strategy)
	performerRepo := repository.NewPerformerRepo(a.db, strategy)
	categoryRepo := repository.NewCategoryRepo(a.db, strategy)
	bookingRepo := repository.NewBookingRepo(a.db, strategy)

	publisher, err := notification.NewBrokerPublisher(a.cfg.Broker.URL, a.cfg.Broker.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = publisher

	catalogService := service.NewCatalogService(performerRepo, categoryRepo)
	profileService := service.NewProfileService(profileRepo, performerRepo, categoryRepo, a.log)
	bookingService := service.NewBookingService(bookingRepo, performerRepo, publisher, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	enforcer, err := middleware.NewEnforcer(a.cfg.RBAC.ModelPath, a.cfg.RBAC.PolicyPath)
	if err != nil {
		return fmt.Errorf("load rbac policy: %w", err)
	}
	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	h := handler.NewHandler(catalogService, bookingService, profileService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.Tracing(a.cfg.Tracing.ServiceName),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Authenticate(tokens),
		middleware.Authorize(enforcer, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close broker publisher", logger.String("error", err.Error()))
	}

	if err := a.shutdownTracer(shutdownCtx); err != nil {
		a.log.Warn("flush traces", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
