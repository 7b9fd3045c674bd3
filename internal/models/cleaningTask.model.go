package models

import (
	"time"

	"github.com/google/uuid"
)

type CleaningTaskStatus string

const (
	CleaningPending    CleaningTaskStatus = "pending"
	CleaningInProgress CleaningTaskStatus = "in_progress"
	CleaningCompleted  CleaningTaskStatus = "completed"
)

// CleaningTask is created when a stay completes. Its status derives
// deterministically from checklist completion.
type CleaningTask struct {
	Base
	HouseID     uuid.UUID          `json:"houseId"`
	StayID      uuid.UUID          `json:"stayId"`
	AssignedTo  *uuid.UUID         `json:"assignedTo,omitempty"`
	Checklist   []ChecklistItem    `json:"checklist"`
	Status      CleaningTaskStatus `json:"status"`
	IssuesFound []uuid.UUID        `json:"issuesFound"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
}

func (t CleaningTask) Clone() CleaningTask {
	out := t
	out.Checklist = CloneChecklist(t.Checklist)
	out.IssuesFound = cloneUUIDs(t.IssuesFound)
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}

// DeriveStatus recomputes the task status from its checklist: all items
// checked means completed, any item checked means in progress.
func (t *CleaningTask) DeriveStatus() CleaningTaskStatus {
	checked, total := ChecklistProgress(t.Checklist)
	switch {
	case total > 0 && checked == total:
		return CleaningCompleted
	case checked > 0:
		return CleaningInProgress
	default:
		return CleaningPending
	}
}
