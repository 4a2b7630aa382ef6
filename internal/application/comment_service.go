package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/domain/entity"
	repo "github.com/ozancz/sozluk/internal/domain/repository"
)

// CommentService owns comment listing and creation. Comments never
// denormalize counts onto their entry.
type CommentService struct {
	Comments repo.CommentRepository
	Entries  repo.EntryRepository
	Relay    Relay
	Logger   *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, entries repo.EntryRepository, relay Relay, logger *logrus.Logger) *CommentService {
	if relay == nil {
		relay = NopRelay{}
	}
	return &CommentService{Comments: comments, Entries: entries, Relay: relay, Logger: logger}
}

// List returns an entry's comments newest first. The entry must exist.
func (s *CommentService) List(ctx context.Context, entryID string, page Page) ([]*entity.Comment, int64, error) {
	if entryID == "" {
		return nil, 0, validationf("entryId is required")
	}
	if _, err := s.Entries.GetByID(ctx, entryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, 0, ErrEntryNotFound
		}
		return nil, 0, err
	}
	return s.Comments.ListByEntry(ctx, entryID, page.Offset(), page.Limit)
}

// CreateCommentInput is a new comment under an existing entry.
type CreateCommentInput struct {
	Content string
	EntryID string
}

func (s *CommentService) Create(ctx context.Context, author *entity.Author, in CreateCommentInput) (*entity.Comment, error) {
	if author == nil {
		return nil, ErrUnauthorized
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, validationf("content is required")
	}
	if len([]rune(content)) > 1000 {
		return nil, validationf("comment must be at most 1000 characters")
	}
	if in.EntryID == "" {
		return nil, validationf("entryId is required")
	}

	if _, err := s.Entries.GetByID(ctx, in.EntryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	comment := &entity.Comment{
		Content:  content,
		AuthorID: author.ID,
		EntryID:  in.EntryID,
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author

	s.Relay.Broadcast(ctx, Event{Type: EventNewComment, Payload: comment, ActorID: author.ID})
	return comment, nil
}
