package middleware

import (
	"rentalos/config"
	"rentalos/internal/events"
	"rentalos/internal/services"
	"rentalos/internal/store"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	Store    *store.Store
	Config   config.Config
	token    *services.TokenService
	log      logger.Logger
	eventBus *events.EventBus
}

func New(
	domainStore *store.Store,
	eventBus *events.EventBus,
	config config.Config,
	token *services.TokenService,
) Middleware {
	log := logger.New("middleware")

	return Middleware{
		Store:    domainStore,
		Config:   config,
		token:    token,
		log:      log,
		eventBus: eventBus,
	}
}
