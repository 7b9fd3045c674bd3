package jobs

import (
	"rentalos/internal/controllers"
	"rentalos/internal/logger"
	"rentalos/internal/services"
	"rentalos/internal/store"
)

// RegisterAllJobs wires every recurring job into the scheduler
func RegisterAllJobs(
	scheduler *services.SchedulerService,
	domainStore *store.Store,
	service services.Service,
	controller controllers.Controller,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")

	sweep := NewChecklistSweepJob(domainStore, service.Checklist, controller.Stays)
	if err := scheduler.AddJob(sweep); err != nil {
		return log.Err("failed to register checklist sweep job", err)
	}

	log.Info("All jobs registered", "jobCount", scheduler.GetJobCount())
	return nil
}
