package app

import (
	"context"
	"time"

	"rentalos/config"
	"rentalos/internal/controllers"
	"rentalos/internal/database"
	"rentalos/internal/events"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/jobs"
	"rentalos/internal/logger"
	"rentalos/internal/repositories"
	"rentalos/internal/services"
	"rentalos/internal/store"
	"rentalos/internal/websockets"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config

	Store      *store.Store
	StateRepo  repositories.StateRepository
	Service    services.Service
	Controller controllers.Controller
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Events, config)

	stateRepo := repositories.NewStateRepository(db)
	domainStore := store.New(stateRepo)

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := domainStore.Load(loadCtx); err != nil {
		return &App{}, log.Err("failed to load domain state", err)
	}

	service, err := services.New(config)
	if err != nil {
		return &App{}, log.Err("failed to initialize services", err)
	}

	controller := controllers.New(domainStore, eventBus, service)

	websocket, err := websockets.New(eventBus)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	middleware := middleware.New(domainStore, eventBus, config, service.Token)

	if config.SchedulerEnabled {
		if err := jobs.RegisterAllJobs(service.Scheduler, domainStore, service, controller); err != nil {
			return &App{}, log.Err("failed to register jobs", err)
		}
		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}

		// Catch activations that came due while the server was down
		if err := service.Scheduler.TriggerJobByName(context.Background(), "checklist-sweep"); err != nil {
			log.Warn("failed to trigger initial checklist sweep", "error", err)
		}
	}

	app := &App{
		Database:   db,
		Config:     config,
		Middleware: middleware,
		Websocket:  websocket,
		EventBus:   eventBus,
		Store:      domainStore,
		StateRepo:  stateRepo,
		Service:    service,
		Controller: controller,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.State == nil || a.Database.Events == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.Store,
		a.StateRepo,
		a.Service.Scheduler,
		a.Service.Checklist,
		a.Service.Token,
		a.Controller.Auth,
		a.Controller.Houses,
		a.Controller.Stays,
		a.Controller.Issues,
		a.Controller.Shopping,
		a.Controller.Board,
		a.Controller.Cleaning,
		a.Controller.Notifications,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if a.Service.Scheduler != nil {
		if closeErr := a.Service.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
