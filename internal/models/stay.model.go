package models

import (
	"time"

	"github.com/google/uuid"
)

type StayStatus string

const (
	StayRequested StayStatus = "requested"
	StayPlanned   StayStatus = "planned"
	StayConfirmed StayStatus = "confirmed"
	StayActive    StayStatus = "active"
	StayCompleted StayStatus = "completed"
	StayCancelled StayStatus = "cancelled"
)

// stayTransitions holds the forward-only lifecycle. Completed and cancelled
// are terminal.
var stayTransitions = map[StayStatus][]StayStatus{
	StayRequested: {StayConfirmed, StayCancelled},
	StayPlanned:   {StayActive, StayCancelled},
	StayConfirmed: {StayActive, StayCancelled},
	StayActive:    {StayCompleted},
}

func (s StayStatus) CanTransitionTo(next StayStatus) bool {
	for _, allowed := range stayTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s StayStatus) Terminal() bool {
	return s == StayCompleted || s == StayCancelled
}

// RulesAcknowledgment records one member accepting one rules revision
type RulesAcknowledgment struct {
	MemberID       uuid.UUID `json:"memberId"`
	RulesVersion   int       `json:"rulesVersion"`
	AcknowledgedAt time.Time `json:"acknowledgedAt"`
}

// StaySummary is computed once, when a stay completes
type StaySummary struct {
	ArrivalChecked   int         `json:"arrivalChecked"`
	ArrivalTotal     int         `json:"arrivalTotal"`
	DepartureChecked int         `json:"departureChecked"`
	DepartureTotal   int         `json:"departureTotal"`
	IssueIDs         []uuid.UUID `json:"issueIds"`
}

// Stay is a booking spanning [startDate, endDate) at one house. Checklists
// are deep copies of the house defaults taken at creation time.
type Stay struct {
	Base
	HouseID                  uuid.UUID             `json:"houseId"`
	StartDate                time.Time             `json:"startDate"`
	EndDate                  time.Time             `json:"endDate"`
	Status                   StayStatus            `json:"status"`
	Attendees                []uuid.UUID           `json:"attendees"`
	ArrivalChecklist         []ChecklistItem       `json:"arrivalChecklist"`
	DepartureChecklist       []ChecklistItem       `json:"departureChecklist"`
	ArrivalChecklistActive   bool                  `json:"arrivalChecklistActive"`
	DepartureChecklistActive bool                  `json:"departureChecklistActive"`
	RulesAcknowledgments     []RulesAcknowledgment `json:"rulesAcknowledgments"`
	ConfirmedBy              *uuid.UUID            `json:"confirmedBy,omitempty"`
	ConfirmedAt              *time.Time            `json:"confirmedAt,omitempty"`
	Summary                  *StaySummary          `json:"summary,omitempty"`
	CreatedBy                uuid.UUID             `json:"createdBy"`
}

func (s Stay) Clone() Stay {
	out := s
	out.Attendees = cloneUUIDs(s.Attendees)
	out.ArrivalChecklist = CloneChecklist(s.ArrivalChecklist)
	out.DepartureChecklist = CloneChecklist(s.DepartureChecklist)
	if s.RulesAcknowledgments != nil {
		out.RulesAcknowledgments = make([]RulesAcknowledgment, len(s.RulesAcknowledgments))
		copy(out.RulesAcknowledgments, s.RulesAcknowledgments)
	}
	if s.Summary != nil {
		summary := *s.Summary
		summary.IssueIDs = cloneUUIDs(s.Summary.IssueIDs)
		out.Summary = &summary
	}
	return out
}

// Overlaps reports whether two date ranges [s1,e1) and [s2,e2) at the same
// house collide: s1 <= e2 and e1 >= s2.
func (s *Stay) Overlaps(other *Stay) bool {
	if s.HouseID != other.HouseID {
		return false
	}
	return !s.StartDate.After(other.EndDate) && !s.EndDate.Before(other.StartDate)
}

// HasAcknowledged reports whether a member already accepted a rules version
func (s *Stay) HasAcknowledged(memberID uuid.UUID, rulesVersion int) bool {
	for _, ack := range s.RulesAcknowledgments {
		if ack.MemberID == memberID && ack.RulesVersion == rulesVersion {
			return true
		}
	}
	return false
}

func cloneUUIDs(in []uuid.UUID) []uuid.UUID {
	if in == nil {
		return nil
	}
	out := make([]uuid.UUID, len(in))
	copy(out, in)
	return out
}
