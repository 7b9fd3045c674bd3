package models

import (
	"github.com/google/uuid"
)

// BoardPost is a message on a house board. Pinned posts sort before unpinned;
// within each group newest first.
type BoardPost struct {
	Base
	HouseID  uuid.UUID `json:"houseId"`
	AuthorID uuid.UUID `json:"authorId"`
	Content  string    `json:"content"`
	IsPinned bool      `json:"isPinned"`
}
