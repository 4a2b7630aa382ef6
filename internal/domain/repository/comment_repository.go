package repository

import (
	"context"

	"github.com/ozancz/sozluk/internal/domain/entity"
)

// CommentRepository defines comment persistence. Comments live independently
// from their entry; listing orders newest first.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByEntry(ctx context.Context, entryID string, offset, limit int) ([]*entity.Comment, int64, error)
}
