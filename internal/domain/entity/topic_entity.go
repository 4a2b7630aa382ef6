package entity

import (
	"time"
)

// Topic is a discussion headline. EntryCount is a denormalized display
// aggregate: it must equal the number of entries referencing the topic and is
// maintained with atomic store-level increments, never by re-counting.
type Topic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	AuthorID    string    `json:"-"`
	Author      *Author   `json:"author,omitempty"`
	EntryCount  int       `json:"entryCount"`
	IsPopular   bool      `json:"isPopular"`
	IsFeatured  bool      `json:"isFeatured"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TopicRef is the shallow projection of a Topic attached to entries.
type TopicRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
