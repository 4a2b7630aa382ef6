package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/domain/entity"
	repo "github.com/ozancz/sozluk/internal/domain/repository"
	"github.com/ozancz/sozluk/pkg/helpers"
)

// EntryService owns entry listing (including DEBE), entry creation with the
// entry-count invariant, and the like/unlike state machine.
type EntryService struct {
	Entries repo.EntryRepository
	Topics  repo.TopicRepository
	Relay   Relay
	Logger  *logrus.Logger
}

func NewEntryService(entries repo.EntryRepository, topics repo.TopicRepository, relay Relay, logger *logrus.Logger) *EntryService {
	if relay == nil {
		relay = NopRelay{}
	}
	return &EntryService{Entries: entries, Topics: topics, Relay: relay, Logger: logger}
}

// ListEntriesInput selects entries under a topic or the DEBE view.
type ListEntriesInput struct {
	TopicID string
	Debe    bool
	Page    Page
}

// List returns entries newest first, or for DEBE the entries created during
// yesterday's local calendar day ranked by like count (ties broken by id).
func (s *EntryService) List(ctx context.Context, in ListEntriesInput) ([]*entity.Entry, int64, error) {
	q := repo.EntryQuery{
		TopicID: in.TopicID,
		Offset:  in.Page.Offset(),
		Limit:   in.Page.Limit,
	}
	if in.Debe {
		q.CreatedFrom, q.CreatedBefore = helpers.DebeWindow(time.Now())
		q.ByLikes = true
	}
	return s.Entries.List(ctx, q)
}

func (s *EntryService) Get(ctx context.Context, id string) (*entity.Entry, error) {
	e, err := s.Entries.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	return e, err
}

// CreateEntryInput is a new entry under an existing topic.
type CreateEntryInput struct {
	Content string
	TopicID string
}

// Create validates the content, checks the topic, persists the entry and
// then increments the topic's entry_count by exactly one through the atomic
// store operation. A failed increment leaves an under-count: logged, not
// rolled back — the count is a display aggregate, not a source of truth.
func (s *EntryService) Create(ctx context.Context, author *entity.Author, in CreateEntryInput) (*entity.Entry, error) {
	if author == nil {
		return nil, ErrUnauthorized
	}
	content := strings.TrimSpace(in.Content)
	if n := len([]rune(content)); n < 10 || n > 5000 {
		return nil, validationf("entry must be between 10 and 5000 characters")
	}
	if in.TopicID == "" {
		return nil, validationf("topicId is required")
	}

	topic, err := s.Topics.GetByID(ctx, in.TopicID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := &entity.Entry{
		Content:  content,
		AuthorID: author.ID,
		TopicID:  topic.ID,
		Likes:    []string{},
	}
	if err := s.Entries.Create(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.Topics.IncrementEntryCount(ctx, topic.ID, 1); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"topic_id": topic.ID,
			"entry_id": entry.ID,
		}).Warn("entry count increment failed, topic is under-counted")
	}

	entry.Author = author
	entry.Topic = &entity.TopicRef{ID: topic.ID, Title: topic.Title, Slug: topic.Slug}

	s.Relay.Broadcast(ctx, Event{Type: EventNewEntry, Payload: entry, ActorID: author.ID})
	return entry, nil
}

// Like moves the (entry, user) pair from NotLiked to Liked. The membership
// pre-check produces the precise AlreadyLiked error; the storage mutation
// itself stays an idempotent guarded set-add, so races degrade to a no-op.
func (s *EntryService) Like(ctx context.Context, userID, entryID string) (*entity.Entry, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	entry, err := s.Entries.GetByID(ctx, entryID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	if entry.LikedBy(userID) {
		return nil, ErrAlreadyLiked
	}

	if err := s.Entries.AddLike(ctx, entryID, userID); err != nil {
		return nil, err
	}
	updated, err := s.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	s.Relay.Broadcast(ctx, Event{Type: EventNewLike, Payload: updated, ActorID: userID})
	return updated, nil
}

// Unlike moves the pair from Liked back to NotLiked, rejecting with NotLiked
// when the user never liked the entry.
func (s *EntryService) Unlike(ctx context.Context, userID, entryID string) (*entity.Entry, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	entry, err := s.Entries.GetByID(ctx, entryID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	if !entry.LikedBy(userID) {
		return nil, ErrNotLiked
	}

	if err := s.Entries.RemoveLike(ctx, entryID, userID); err != nil {
		return nil, err
	}
	updated, err := s.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	s.Relay.Broadcast(ctx, Event{Type: EventEntryUpdated, Payload: updated, ActorID: userID})
	return updated, nil
}
