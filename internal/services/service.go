package services

import (
	"rentalos/config"
)

type Service struct {
	Scheduler *SchedulerService
	Checklist *ChecklistService
	Token     *TokenService
}

func New(config config.Config) (Service, error) {
	tokenService, err := NewTokenService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Scheduler: NewSchedulerService(),
		Checklist: NewChecklistService(),
		Token:     tokenService,
	}, nil
}
