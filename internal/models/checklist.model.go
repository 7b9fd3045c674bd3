package models

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistItem belongs to exactly one checklist instance. Items are never
// shared across instances; every stay or cleaning task receives its own deep
// copy of the house defaults.
type ChecklistItem struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Checked   bool       `json:"checked"`
	CheckedBy *uuid.UUID `json:"checkedBy,omitempty"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

// CopyChecklist produces a fresh instance of a checklist template: same item
// texts, new ids, nothing checked.
func CopyChecklist(template []ChecklistItem) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(template))
	for _, item := range template {
		items = append(items, ChecklistItem{
			ID:   uuid.New(),
			Text: item.Text,
		})
	}
	return items
}

// CloneChecklist is a value copy preserving ids and checked state
func CloneChecklist(items []ChecklistItem) []ChecklistItem {
	if items == nil {
		return nil
	}
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	return out
}

// ChecklistProgress counts checked items against the total
func ChecklistProgress(items []ChecklistItem) (checked int, total int) {
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return checked, len(items)
}

// NewChecklist builds a checklist template from item texts
func NewChecklist(texts ...string) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, ChecklistItem{ID: uuid.New(), Text: text})
	}
	return items
}
