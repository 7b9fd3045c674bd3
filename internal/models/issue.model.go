package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueType string

const (
	IssueMaintenance IssueType = "maintenance"
	IssueDamage      IssueType = "damage"
	IssueSafety      IssueType = "safety"
)

type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssuePlanned    IssueStatus = "planned"
	IssueInProgress IssueStatus = "in_progress"
	IssueFixed      IssueStatus = "fixed"
)

// issueStatusRank orders the forward-only issue lifecycle
var issueStatusRank = map[IssueStatus]int{
	IssueOpen:       0,
	IssuePlanned:    1,
	IssueInProgress: 2,
	IssueFixed:      3,
}

// CanTransitionTo permits forward movement only
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	currentRank, ok := issueStatusRank[s]
	if !ok {
		return false
	}
	nextRank, ok := issueStatusRank[next]
	if !ok {
		return false
	}
	return nextRank > currentRank
}

type Issue struct {
	Base
	HouseID     uuid.UUID     `json:"houseId"`
	StayID      *uuid.UUID    `json:"stayId,omitempty"`
	RoomID      *uuid.UUID    `json:"roomId,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        IssueType     `json:"type"`
	Severity    IssueSeverity `json:"severity"`
	Status      IssueStatus   `json:"status"`
	ReportedBy  uuid.UUID     `json:"reportedBy"`
	AssignedTo  *uuid.UUID    `json:"assignedTo,omitempty"`
	ResolvedAt  *time.Time    `json:"resolvedAt,omitempty"`
	ResolvedBy  *uuid.UUID    `json:"resolvedBy,omitempty"`
}

func (i Issue) Clone() Issue {
	out := i
	out.StayID = cloneUUIDPtr(i.StayID)
	out.RoomID = cloneUUIDPtr(i.RoomID)
	out.AssignedTo = cloneUUIDPtr(i.AssignedTo)
	out.ResolvedBy = cloneUUIDPtr(i.ResolvedBy)
	if i.ResolvedAt != nil {
		resolvedAt := *i.ResolvedAt
		out.ResolvedAt = &resolvedAt
	}
	return out
}

func cloneUUIDPtr(in *uuid.UUID) *uuid.UUID {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
