package jobs

import (
	"context"
	"time"

	stayController "rentalos/internal/controllers/stays"
	"rentalos/internal/logger"
	"rentalos/internal/services"
	"rentalos/internal/store"
)

// ChecklistSweepJob periodically scans every stay and activates arrival and
// departure checklists whose time windows have opened. Activation is
// idempotent, so overlapping sweeps are harmless.
type ChecklistSweepJob struct {
	store     *store.Store
	checklist *services.ChecklistService
	stays     stayController.StayControllerInterface
	log       logger.Logger
}

func NewChecklistSweepJob(
	domainStore *store.Store,
	checklist *services.ChecklistService,
	stays stayController.StayControllerInterface,
) *ChecklistSweepJob {
	return &ChecklistSweepJob{
		store:     domainStore,
		checklist: checklist,
		stays:     stays,
		log:       logger.New("checklistSweepJob"),
	}
}

func (j *ChecklistSweepJob) Name() string {
	return "checklist-sweep"
}

func (j *ChecklistSweepJob) Schedule() services.Schedule {
	return services.EveryFifteenMinutes
}

// Execute runs one sweep over the current snapshot. Failures on individual
// stays are logged and skipped so one bad record never stalls the rest.
func (j *ChecklistSweepJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	now := time.Now()
	state := j.store.Snapshot()

	arrivals, departures := 0, 0
	for _, stay := range state.Stays {
		if err := ctx.Err(); err != nil {
			return log.Err("sweep cancelled", err)
		}

		if j.checklist.ShouldActivateArrival(stay, now) {
			if _, err := j.stays.ActivateArrivalChecklist(ctx, stay.ID); err != nil {
				log.Er("failed to activate arrival checklist", err, "stayID", stay.ID)
				continue
			}
			arrivals++
		}

		if j.checklist.ShouldActivateDeparture(stay, now) {
			if _, err := j.stays.ActivateDepartureChecklist(ctx, stay.ID); err != nil {
				log.Er("failed to activate departure checklist", err, "stayID", stay.ID)
				continue
			}
			departures++
		}
	}

	if arrivals > 0 || departures > 0 {
		log.Info("checklist sweep activated checklists", "arrivals", arrivals, "departures", departures)
	}

	return nil
}
