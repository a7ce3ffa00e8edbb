// Package app assembles storage, services, handlers and middleware into a
// runnable Fiber application.
package app

import (
	"errors"
	"fmt"
	"sync"

	"civic/internal/config"
	"civic/internal/handlers"
	"civic/internal/middleware"
	"civic/internal/repositories"
	"civic/internal/services"
	"civic/internal/store"
	"civic/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// App is the HTTP application together with the resources it owns.
type App struct {
	Fiber  *fiber.App
	Events *rabbitmq.Client

	closers []func() error
}

// New opens the configured storage backend and, when RABBITMQ_URL is set,
// the event broker, then builds the HTTP application on top of them.
func New(cfg config.Config) (*App, error) {
	a := &App{}

	set, err := a.openStorage(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Events = mq
		a.closers = append(a.closers, mq.Close)
		events = mq
	} else {
		log.Info("RABBITMQ_URL not set, domain events disabled")
	}

	a.Fiber = NewFiber(cfg.CORSOrigins, set, events)
	return a, nil
}

func (a *App) openStorage(cfg config.Config) (*repositories.Set, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		set, err := repositories.NewFileSet(store.NewOSStore(cfg.DataDir))
		if err != nil {
			return nil, err
		}
		log.WithField("dir", cfg.DataDir).Info("Using JSON file storage")
		return set, nil
	case config.StorageSQLite, config.StoragePostgres:
		db, err := repositories.OpenDatabase(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		log.WithField("driver", cfg.StorageDriver).Info("Using database storage")
		return repositories.NewGORMSet(db), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// NewFiber wires services and handlers over set. events may be nil.
func NewFiber(origins []string, set *repositories.Set, events services.EventPublisher) *fiber.App {
	writeMu := &sync.Mutex{}

	authService := services.NewAuthService(set.Users)
	userService := services.NewUserService(set.Users, writeMu, events)
	actionService := services.NewActionService(set.Actions, set.Users, set.Participations, writeMu, events)
	participationService := services.NewParticipationService(set.Participations, set.Users, set.Actions, writeMu, events)
	leaderboardService := services.NewLeaderboardService(set.Users)
	chatbotService := services.NewChatbotService()

	app := fiber.New(fiber.Config{
		AppName:               "civic",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})
	middleware.Use(app, origins)

	app.Get("/", handlers.Health)
	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewActionHandler(actionService).RegisterRoutes(app)
	handlers.NewParticipationHandler(participationService).RegisterRoutes(app)
	handlers.NewLeaderboardHandler(leaderboardService).RegisterRoutes(app)
	handlers.NewChatbotHandler(chatbotService).RegisterRoutes(app)

	return app
}

// Close releases the broker connection and database handle, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
