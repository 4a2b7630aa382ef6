package entity

import (
	"time"
)

// Entry is a single post under a Topic. Likes is a set of user ids; the
// store enforces set semantics, duplicates never appear.
type Entry struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"-"`
	Author     *Author   `json:"author,omitempty"`
	TopicID    string    `json:"-"`
	Topic      *TopicRef `json:"topic,omitempty"`
	Likes      []string  `json:"likes"`
	IsEdited   bool      `json:"isEdited"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikedBy reports whether userID is in the entry's liker set.
func (e *Entry) LikedBy(userID string) bool {
	for _, id := range e.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeCount returns the size of the liker set.
func (e *Entry) LikeCount() int { return len(e.Likes) }
