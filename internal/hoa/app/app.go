package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/hoaboard/internal/hoa/http"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store/drivers/sqlite"
	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application is the HOA board service with all of its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager

	gate                *service.Gate
	identityService     *service.IdentityService
	communityService    *service.CommunityService
	pollService         *service.PollService
	potluckService      *service.PotluckService
	suggestionService   *service.SuggestionService
	questionService     *service.QuestionService
	calendarService     *service.CalendarService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hoaboard",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("hoaboard starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hoaboard...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hoaboard stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.gate = &service.Gate{Store: app.db}

	app.identityService = &service.IdentityService{
		Store:     app.db,
		Keys:      app.keyManager,
		Issuer:    app.cfg.Issuer,
		TokenTTL:  app.cfg.TokenTTL,
		ResetTTL:  app.cfg.ResetTokenTTL,
		PublicURL: app.cfg.PublicURL,
		Mailer:    service.LogMailer{Logger: app.logger},
	}
	app.communityService = &service.CommunityService{Store: app.db}
	app.pollService = &service.PollService{Store: app.db}
	app.potluckService = &service.PotluckService{Store: app.db}
	app.suggestionService = &service.SuggestionService{Store: app.db}
	app.questionService = &service.QuestionService{Store: app.db}
	app.calendarService = &service.CalendarService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Gate = app.gate
	router.IdentityService = app.identityService
	router.CommunityService = app.communityService
	router.PollService = app.pollService
	router.PotluckService = app.potluckService
	router.SuggestionService = app.suggestionService
	router.QuestionService = app.questionService
	router.CalendarService = app.calendarService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
