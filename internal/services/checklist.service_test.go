package services

import (
	"testing"
	"time"

	"rentalos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldActivateArrival(t *testing.T) {
	service := NewChecklistService()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stayAt := func(status models.StayStatus, startsIn time.Duration, active bool) models.Stay {
		return models.Stay{
			Base:                   models.NewBase(),
			Status:                 status,
			StartDate:              now.Add(startsIn),
			ArrivalChecklistActive: active,
		}
	}

	testCases := []struct {
		name string
		stay models.Stay
		want bool
	}{
		{"confirmed inside window", stayAt(models.StayConfirmed, 36*time.Hour, false), true},
		{"exactly at 48h boundary", stayAt(models.StayConfirmed, 48*time.Hour, false), true},
		{"just outside window", stayAt(models.StayConfirmed, 48*time.Hour+time.Minute, false), false},
		{"start already passed", stayAt(models.StayConfirmed, -time.Hour, false), false},
		{"requested never activates", stayAt(models.StayRequested, 12*time.Hour, false), false},
		{"active stay never re-arms arrival", stayAt(models.StayActive, 12*time.Hour, false), false},
		{"already active is idempotent", stayAt(models.StayConfirmed, 12*time.Hour, true), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.ShouldActivateArrival(tc.stay, now))
		})
	}
}

func TestShouldActivateDeparture(t *testing.T) {
	service := NewChecklistService()

	// Checkout on Sep 4th: the departure window opens Sep 3rd at 18:00
	end := time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC)

	stayWith := func(status models.StayStatus, active bool) models.Stay {
		return models.Stay{
			Base:                     models.NewBase(),
			Status:                   status,
			EndDate:                  end,
			DepartureChecklistActive: active,
		}
	}

	testCases := []struct {
		name string
		stay models.Stay
		now  time.Time
		want bool
	}{
		{
			"before the evening window",
			stayWith(models.StayActive, false),
			time.Date(2026, 9, 3, 17, 59, 0, 0, time.UTC),
			false,
		},
		{
			"exactly at 18:00 the day before",
			stayWith(models.StayActive, false),
			time.Date(2026, 9, 3, 18, 0, 0, 0, time.UTC),
			true,
		},
		{
			"later that evening",
			stayWith(models.StayActive, false),
			time.Date(2026, 9, 3, 22, 30, 0, 0, time.UTC),
			true,
		},
		{
			"on checkout day",
			stayWith(models.StayActive, false),
			time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC),
			true,
		},
		{
			"confirmed but not checked in",
			stayWith(models.StayConfirmed, false),
			time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC),
			false,
		},
		{
			"already active is idempotent",
			stayWith(models.StayActive, true),
			time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.ShouldActivateDeparture(tc.stay, tc.now))
		})
	}
}

func TestDepartureUsesEndDateLocation(t *testing.T) {
	service := NewChecklistService()

	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	end := time.Date(2026, 9, 4, 11, 0, 0, 0, chicago)
	stay := models.Stay{Base: models.NewBase(), Status: models.StayActive, EndDate: end}

	// 18:00 Chicago on Sep 3rd is 23:00 UTC
	beforeLocal := time.Date(2026, 9, 3, 22, 0, 0, 0, time.UTC)
	afterLocal := time.Date(2026, 9, 3, 23, 30, 0, 0, time.UTC)

	assert.False(t, service.ShouldActivateDeparture(stay, beforeLocal))
	assert.True(t, service.ShouldActivateDeparture(stay, afterLocal))
}
