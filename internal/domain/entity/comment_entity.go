package entity

import (
	"time"
)

// Comment hangs off an Entry by id. Its lifecycle is independent from the
// entry; no count is denormalized onto Entry.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"-"`
	Author    *Author   `json:"author,omitempty"`
	EntryID   string    `json:"entryId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
