package models

import (
	"time"

	"github.com/google/uuid"
)

type RoomType string

const (
	RoomBedroom  RoomType = "bedroom"
	RoomBathroom RoomType = "bathroom"
	RoomKitchen  RoomType = "kitchen"
	RoomLiving   RoomType = "living"
	RoomOutdoor  RoomType = "outdoor"
	RoomOther    RoomType = "other"
)

// Room belongs to exactly one house; deleting the house deletes its rooms.
type Room struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     RoomType  `json:"type"`
	Capacity int       `json:"capacity"`
	Notes    string    `json:"notes,omitempty"`
}

// RulesSnapshot is an immutable record of a past rules revision
type RulesSnapshot struct {
	Version   int       `json:"version"`
	Rules     []string  `json:"rules"`
	UpdatedBy uuid.UUID `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type House struct {
	Base
	Name                      string          `json:"name"`
	Address                   string          `json:"address,omitempty"`
	Rooms                     []Room          `json:"rooms"`
	Rules                     []string        `json:"rules"`
	RulesVersion              int             `json:"rulesVersion"`
	RulesHistory              []RulesSnapshot `json:"rulesHistory"`
	DefaultArrivalChecklist   []ChecklistItem `json:"defaultArrivalChecklist"`
	DefaultDepartureChecklist []ChecklistItem `json:"defaultDepartureChecklist"`
	DefaultCleaningChecklist  []ChecklistItem `json:"defaultCleaningChecklist"`
	SafetyInfo                string          `json:"safetyInfo,omitempty"`
}

func (h House) Clone() House {
	out := h
	out.Rooms = make([]Room, len(h.Rooms))
	copy(out.Rooms, h.Rooms)
	out.Rules = cloneStrings(h.Rules)
	out.RulesHistory = make([]RulesSnapshot, len(h.RulesHistory))
	for i, snapshot := range h.RulesHistory {
		out.RulesHistory[i] = snapshot
		out.RulesHistory[i].Rules = cloneStrings(snapshot.Rules)
	}
	out.DefaultArrivalChecklist = CloneChecklist(h.DefaultArrivalChecklist)
	out.DefaultDepartureChecklist = CloneChecklist(h.DefaultDepartureChecklist)
	out.DefaultCleaningChecklist = CloneChecklist(h.DefaultCleaningChecklist)
	return out
}

func (h *House) RoomByID(id uuid.UUID) (Room, bool) {
	for _, room := range h.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
