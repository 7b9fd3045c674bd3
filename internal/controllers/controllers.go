package controllers

import (
	authController "rentalos/internal/controllers/auth"
	boardController "rentalos/internal/controllers/board"
	cleaningController "rentalos/internal/controllers/cleaning"
	houseController "rentalos/internal/controllers/houses"
	issueController "rentalos/internal/controllers/issues"
	notificationController "rentalos/internal/controllers/notifications"
	shoppingController "rentalos/internal/controllers/shopping"
	stayController "rentalos/internal/controllers/stays"
	"rentalos/internal/events"
	"rentalos/internal/services"
	"rentalos/internal/store"
)

// Controller aggregates every domain controller behind one handle for the
// server layer.
type Controller struct {
	Auth          authController.AuthControllerInterface
	Houses        houseController.HouseControllerInterface
	Stays         stayController.StayControllerInterface
	Issues        issueController.IssueControllerInterface
	Shopping      shoppingController.ShoppingControllerInterface
	Board         boardController.BoardControllerInterface
	Cleaning      cleaningController.CleaningControllerInterface
	Notifications notificationController.NotificationControllerInterface
}

func New(domainStore *store.Store, eventBus *events.EventBus, service services.Service) Controller {
	notifications := notificationController.New(domainStore, eventBus)

	return Controller{
		Auth:          authController.New(domainStore, service.Token),
		Houses:        houseController.New(domainStore),
		Stays:         stayController.New(domainStore, eventBus, notifications),
		Issues:        issueController.New(domainStore, notifications),
		Shopping:      shoppingController.New(domainStore, notifications),
		Board:         boardController.New(domainStore),
		Cleaning:      cleaningController.New(domainStore),
		Notifications: notifications,
	}
}
