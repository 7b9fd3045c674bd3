package services

import (
	"time"

	"rentalos/internal/logger"
	"rentalos/internal/models"
)

const (
	// ArrivalActivationWindow is how far ahead of check-in the arrival
	// checklist wakes up
	ArrivalActivationWindow = 48 * time.Hour

	// DepartureActivationHour is the local hour on the evening before
	// checkout when the departure checklist wakes up
	DepartureActivationHour = 18
)

// ChecklistService holds the time-based activation predicates for stay
// checklists. Both predicates are idempotent: an already-active checklist
// never re-activates.
type ChecklistService struct {
	log logger.Logger
}

func NewChecklistService() *ChecklistService {
	return &ChecklistService{
		log: logger.New("checklistService"),
	}
}

// ShouldActivateArrival activates when the stay is confirmed and check-in is
// at most 48 hours away. Strictly more than zero hours: a stay already past
// its start date is not retroactively activated by the sweep.
func (s *ChecklistService) ShouldActivateArrival(stay models.Stay, now time.Time) bool {
	if stay.Status != models.StayConfirmed || stay.ArrivalChecklistActive {
		return false
	}

	untilStart := stay.StartDate.Sub(now)
	return untilStart > 0 && untilStart <= ArrivalActivationWindow
}

// ShouldActivateDeparture activates at or after 18:00 local time on the
// calendar day immediately preceding checkout, while the stay is active.
func (s *ChecklistService) ShouldActivateDeparture(stay models.Stay, now time.Time) bool {
	if stay.Status != models.StayActive || stay.DepartureChecklistActive {
		return false
	}

	end := stay.EndDate
	threshold := time.Date(
		end.Year(), end.Month(), end.Day(),
		DepartureActivationHour, 0, 0, 0,
		end.Location(),
	).AddDate(0, 0, -1)

	return !now.Before(threshold)
}
