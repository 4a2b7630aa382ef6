package repository

import (
	"context"
	"time"

	"github.com/ozancz/sozluk/internal/domain/entity"
)

// TopicQuery selects and pages topics. Popular filters is_popular and orders
// by entry count descending; otherwise topics come newest first.
// CreatedSince, when non-zero, bounds created_at from below.
type TopicQuery struct {
	Popular      bool
	CreatedSince time.Time
	Offset       int
	Limit        int
}

// TopicRepository defines topic persistence. CreateWithFirstEntry persists
// the topic and its mandatory first entry as one transaction: neither row is
// visible unless both succeed. IncrementEntryCount must be implemented as a
// single atomic store operation, never fetch-then-write.
type TopicRepository interface {
	CreateWithFirstEntry(ctx context.Context, t *entity.Topic, e *entity.Entry) error
	GetByID(ctx context.Context, id string) (*entity.Topic, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Topic, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, q TopicQuery) ([]*entity.Topic, int64, error)
	IncrementEntryCount(ctx context.Context, id string, delta int) error
}
