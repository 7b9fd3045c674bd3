package store

import (
	"time"

	"rentalos/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoState builds the fixed demo dataset used when the persistence layer is
// empty on first load. Seeding instead of starting empty is deliberate
// product behavior: a fresh install shows a working property group.
func DemoState() State {
	now := time.Now().UTC()

	owner := models.Member{
		ID:        uuid.New(),
		Name:      "Maren Holt",
		Email:     "maren@lakeside.example",
		Role:      models.RoleOwner,
		Phone:     "+1 555 0101",
		CreatedAt: now,
	}
	cohost := models.Member{
		ID:        uuid.New(),
		Name:      "Jonas Holt",
		Email:     "jonas@lakeside.example",
		Role:      models.RoleCohost,
		CreatedAt: now,
	}
	guest := models.Member{
		ID:        uuid.New(),
		Name:      "Priya Raman",
		Email:     "priya@guests.example",
		Role:      models.RoleGuest,
		CreatedAt: now,
	}
	cleaner := models.Member{
		ID:        uuid.New(),
		Name:      "Sam Okafor",
		Email:     "sam@cleaning.example",
		Role:      models.RoleCleaner,
		CreatedAt: now,
	}

	lakeHouse := models.House{
		Base:    models.NewBase(),
		Name:    "Lake House",
		Address: "14 Birchwood Lane",
		Rooms: []models.Room{
			{ID: uuid.New(), Name: "Master Bedroom", Type: models.RoomBedroom, Capacity: 2},
			{ID: uuid.New(), Name: "Bunk Room", Type: models.RoomBedroom, Capacity: 4},
			{ID: uuid.New(), Name: "Main Bath", Type: models.RoomBathroom, Capacity: 1},
			{ID: uuid.New(), Name: "Dock", Type: models.RoomOutdoor, Capacity: 8, Notes: "Life jackets in the bench"},
		},
		Rules: []string{
			"No shoes indoors",
			"Quiet hours after 22:00",
			"Lock the boat house when leaving",
		},
		RulesVersion: 1,
		DefaultArrivalChecklist: models.NewChecklist(
			"Pick up keys from the lockbox",
			"Check hot water heater is on",
			"Read the house rules",
		),
		DefaultDepartureChecklist: models.NewChecklist(
			"Strip the beds",
			"Empty the fridge",
			"Return keys to the lockbox",
		),
		DefaultCleaningChecklist: models.NewChecklist(
			"Vacuum all rooms",
			"Wash and replace linens",
			"Restock bathroom supplies",
			"Check smoke detectors",
		),
		SafetyInfo: "Fire extinguisher under the kitchen sink. Emergency: 112.",
	}

	cityApartment := models.House{
		Base:    models.NewBase(),
		Name:    "City Apartment",
		Address: "Apt 4B, 220 Harbor Street",
		Rooms: []models.Room{
			{ID: uuid.New(), Name: "Bedroom", Type: models.RoomBedroom, Capacity: 2},
			{ID: uuid.New(), Name: "Bathroom", Type: models.RoomBathroom, Capacity: 1},
		},
		Rules: []string{
			"No smoking",
			"No parties",
		},
		RulesVersion: 1,
		DefaultArrivalChecklist: models.NewChecklist(
			"Collect fob from concierge",
			"Note the wifi password on the fridge",
		),
		DefaultDepartureChecklist: models.NewChecklist(
			"Take out the trash",
			"Leave fob with concierge",
		),
		DefaultCleaningChecklist: models.NewChecklist(
			"Clean kitchen surfaces",
			"Mop floors",
			"Replace towels",
		),
	}

	confirmedStart := now.Add(36 * time.Hour).Truncate(time.Hour)
	confirmedStay := models.Stay{
		Base:               models.NewBase(),
		HouseID:            lakeHouse.ID,
		StartDate:          confirmedStart,
		EndDate:            confirmedStart.Add(72 * time.Hour),
		Status:             models.StayConfirmed,
		Attendees:          []uuid.UUID{guest.ID},
		ArrivalChecklist:   models.CopyChecklist(lakeHouse.DefaultArrivalChecklist),
		DepartureChecklist: models.CopyChecklist(lakeHouse.DefaultDepartureChecklist),
		ConfirmedBy:        &owner.ID,
		ConfirmedAt:        &now,
		CreatedBy:          guest.ID,
	}

	requestedStart := now.Add(14 * 24 * time.Hour).Truncate(time.Hour)
	requestedStay := models.Stay{
		Base:               models.NewBase(),
		HouseID:            cityApartment.ID,
		StartDate:          requestedStart,
		EndDate:            requestedStart.Add(48 * time.Hour),
		Status:             models.StayRequested,
		Attendees:          []uuid.UUID{guest.ID},
		ArrivalChecklist:   models.CopyChecklist(cityApartment.DefaultArrivalChecklist),
		DepartureChecklist: models.CopyChecklist(cityApartment.DefaultDepartureChecklist),
		CreatedBy:          guest.ID,
	}

	shoppingItems := []models.ShoppingItem{
		{
			Base:          models.NewBase(),
			HouseID:       lakeHouse.ID,
			Name:          "Dish soap",
			Quantity:      2,
			Priority:      models.PriorityNormal,
			Category:      "kitchen",
			Status:        models.ShoppingStandard,
			AddedBy:       cohost.ID,
			EstimatedCost: decimal.NewFromFloat(6.50),
		},
		{
			Base:          models.NewBase(),
			HouseID:       lakeHouse.ID,
			Name:          "Smoke detector batteries",
			Quantity:      4,
			Priority:      models.PriorityUrgent,
			Category:      "safety",
			Status:        models.ShoppingStandard,
			AddedBy:       owner.ID,
			EstimatedCost: decimal.NewFromFloat(12.00),
		},
	}

	welcomePost := models.BoardPost{
		Base:     models.NewBase(),
		HouseID:  lakeHouse.ID,
		AuthorID: owner.ID,
		Content:  "Welcome to the Lake House board. Pinned posts carry the essentials.",
		IsPinned: true,
	}

	return State{
		PropertyGroup: models.PropertyGroup{
			Base:    models.NewBase(),
			Name:    "Lakeside Family",
			Members: []models.Member{owner, cohost, guest, cleaner},
		},
		Houses:        []models.House{lakeHouse, cityApartment},
		Stays:         []models.Stay{confirmedStay, requestedStay},
		ShoppingItems: shoppingItems,
		BoardPosts:    []models.BoardPost{welcomePost},
	}
}
