package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShoppingPriority string

const (
	PriorityUrgent ShoppingPriority = "urgent"
	PriorityHigh   ShoppingPriority = "high"
	PriorityNormal ShoppingPriority = "normal"
	PriorityLow    ShoppingPriority = "low"
)

// shoppingPriorityRank orders the standard shopping view
var shoppingPriorityRank = map[ShoppingPriority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityNormal: 2,
	PriorityLow:    3,
}

func (p ShoppingPriority) Rank() int {
	rank, ok := shoppingPriorityRank[p]
	if !ok {
		return len(shoppingPriorityRank)
	}
	return rank
}

type ShoppingItemStatus string

const (
	ShoppingStandard  ShoppingItemStatus = "standard"
	ShoppingSuggested ShoppingItemStatus = "suggested"
	ShoppingApproved  ShoppingItemStatus = "approved"
	ShoppingRejected  ShoppingItemStatus = "rejected"
)

// ShoppingItem is a supply request for a house. Guest-sourced items enter as
// suggested and need owner approval before joining the standard list.
type ShoppingItem struct {
	Base
	HouseID       uuid.UUID          `json:"houseId"`
	Name          string             `json:"name"`
	Quantity      int                `json:"quantity"`
	Priority      ShoppingPriority   `json:"priority"`
	Category      string             `json:"category"`
	Status        ShoppingItemStatus `json:"status"`
	AddedBy       uuid.UUID          `json:"addedBy"`
	AssignedTo    *uuid.UUID         `json:"assignedTo,omitempty"`
	EstimatedCost decimal.Decimal    `json:"estimatedCost"`
}

func (s ShoppingItem) Clone() ShoppingItem {
	out := s
	out.AssignedTo = cloneUUIDPtr(s.AssignedTo)
	return out
}

// InStandardView reports whether the item shows on the regular shopping list
func (s *ShoppingItem) InStandardView() bool {
	return s.Status == ShoppingStandard || s.Status == ShoppingApproved
}
