package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyGroup is the owning organization holding houses and members
type PropertyGroup struct {
	Base
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

func (g PropertyGroup) Clone() PropertyGroup {
	out := g
	out.Members = make([]Member, len(g.Members))
	copy(out.Members, g.Members)
	return out
}

func (g *PropertyGroup) MemberByID(id uuid.UUID) (Member, bool) {
	for _, member := range g.Members {
		if member.ID == id {
			return member, true
		}
	}
	return Member{}, false
}

// GuestOnboarding tracks a guest's progress through the welcome flow
type GuestOnboarding struct {
	MemberID          uuid.UUID `json:"memberId"`
	CompletedSteps    []string  `json:"completedSteps"`
	RulesAcknowledged bool      `json:"rulesAcknowledged"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (o GuestOnboarding) Clone() GuestOnboarding {
	out := o
	out.CompletedSteps = cloneStrings(o.CompletedSteps)
	return out
}
