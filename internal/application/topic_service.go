package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/domain/entity"
	repo "github.com/ozancz/sozluk/internal/domain/repository"
	"github.com/ozancz/sozluk/pkg/helpers"
	"github.com/ozancz/sozluk/pkg/slug"
)

// TopicService owns topic listing, the compound topic+first-entry creation
// and the Elasticsearch topic index. ES is optional; a nil client disables
// indexing and search.
type TopicService struct {
	Topics        repo.TopicRepository
	Relay         Relay
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESTopicsIndex string
}

func NewTopicService(topics repo.TopicRepository, relay Relay, logger *logrus.Logger, es *elasticsearch.Client, esTopicsIndex string) *TopicService {
	if relay == nil {
		relay = NopRelay{}
	}
	return &TopicService{Topics: topics, Relay: relay, Logger: logger, ES: es, ESTopicsIndex: esTopicsIndex}
}

// ListTopicsInput selects one of the ranked topic views.
type ListTopicsInput struct {
	Popular bool
	Today   bool
	Page    Page
}

// List evaluates the Popular or Today view, or the default newest-first
// listing. Today is bounded by the local calendar day.
func (s *TopicService) List(ctx context.Context, in ListTopicsInput) ([]*entity.Topic, int64, error) {
	q := repo.TopicQuery{
		Popular: in.Popular,
		Offset:  in.Page.Offset(),
		Limit:   in.Page.Limit,
	}
	if in.Today {
		q.CreatedSince = helpers.StartOfDay(time.Now())
	}
	return s.Topics.List(ctx, q)
}

func (s *TopicService) GetBySlug(ctx context.Context, sl string) (*entity.Topic, error) {
	t, err := s.Topics.GetBySlug(ctx, sl)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTopicNotFound
	}
	return t, err
}

// CreateTopicInput carries a new topic together with its mandatory first entry.
type CreateTopicInput struct {
	Title       string
	Description string
	Tags        []string
	FirstEntry  string
}

// Create runs the compound topic+first-entry creation: validate, derive the
// slug, reject duplicates before touching storage, then persist both rows in
// one transaction with entry_count preset to 1. The first entry never goes
// through the regular increment path.
func (s *TopicService) Create(ctx context.Context, author *entity.Author, in CreateTopicInput) (*entity.Topic, *entity.Entry, error) {
	if author == nil {
		return nil, nil, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if n := len([]rune(title)); n < 3 || n > 100 {
		return nil, nil, validationf("title must be between 3 and 100 characters")
	}
	if len([]rune(in.Description)) > 500 {
		return nil, nil, validationf("description must be at most 500 characters")
	}
	content := strings.TrimSpace(in.FirstEntry)
	if n := len([]rune(content)); n < 10 || n > 5000 {
		return nil, nil, validationf("first entry must be between 10 and 5000 characters")
	}

	sl := slug.Make(title)
	if sl == "" {
		return nil, nil, validationf("title must contain at least one letter or digit")
	}
	exists, err := s.Topics.SlugExists(ctx, sl)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrDuplicateSlug
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	topic := &entity.Topic{
		Title:       title,
		Slug:        sl,
		Description: strings.TrimSpace(in.Description),
		AuthorID:    author.ID,
		EntryCount:  1, // anticipates the first entry, avoids a zero-count window
		Tags:        tags,
	}
	entry := &entity.Entry{
		Content:  content,
		AuthorID: author.ID,
		Likes:    []string{},
	}
	if err := s.Topics.CreateWithFirstEntry(ctx, topic, entry); err != nil {
		return nil, nil, err
	}

	topic.Author = author
	entry.Author = author
	entry.Topic = &entity.TopicRef{ID: topic.ID, Title: topic.Title, Slug: topic.Slug}

	s.indexTopic(ctx, topic)
	s.Relay.Broadcast(ctx, Event{Type: EventTopicUpdated, Payload: topic, ActorID: author.ID})
	return topic, entry, nil
}

func (s *TopicService) indexTopic(ctx context.Context, t *entity.Topic) {
	if s.ES == nil || s.ESTopicsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"slug":        t.Slug,
		"description": t.Description,
		"tags":        t.Tags,
		"entry_count": t.EntryCount,
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTopicsIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("topic_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("topic_id", t.ID).Warn("es index response error")
	}
}

// Search runs a multi_match over title, description and tags.
func (s *TopicService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESTopicsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "tags"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESTopicsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
