package repository

import (
	"context"
	"time"

	"github.com/ozancz/sozluk/internal/domain/entity"
)

// EntryQuery selects and pages entries. TopicID filters by owning topic.
// CreatedFrom/CreatedBefore bound created_at as [from, before) when non-zero.
// ByLikes orders by like count descending with id ascending as the
// deterministic tie-break; otherwise entries come newest first.
type EntryQuery struct {
	TopicID       string
	CreatedFrom   time.Time
	CreatedBefore time.Time
	ByLikes       bool
	Offset        int
	Limit         int
}

// EntryRepository defines entry persistence. AddLike and RemoveLike mutate
// the liker set as single atomic guarded updates (set add / set remove);
// adding a present id or removing an absent one is a storage-level no-op.
// Reads returned by GetByID and List carry author and topic populated.
type EntryRepository interface {
	Create(ctx context.Context, e *entity.Entry) error
	GetByID(ctx context.Context, id string) (*entity.Entry, error)
	List(ctx context.Context, q EntryQuery) ([]*entity.Entry, int64, error)
	AddLike(ctx context.Context, entryID, userID string) error
	RemoveLike(ctx context.Context, entryID, userID string) error
}
