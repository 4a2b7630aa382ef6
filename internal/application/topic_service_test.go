package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozancz/sozluk/internal/domain/entity"
)

func newTopicService(topics *fakeTopicRepo, relay Relay) *TopicService {
	return NewTopicService(topics, relay, nil, nil, "")
}

func author() *entity.Author {
	return &entity.Author{ID: "user-1", Username: "ozan", DisplayName: "Ozan"}
}

func TestCreateTopicWithFirstEntry(t *testing.T) {
	topics := newFakeTopicRepo()
	relay := &recordingRelay{}
	svc := newTopicService(topics, relay)

	topic, entry, err := svc.Create(context.Background(), author(), CreateTopicInput{
		Title:      "Türk Kahvesi",
		FirstEntry: "kırk yıl hatırı olan içecek",
	})
	require.NoError(t, err)

	assert.Equal(t, "turk-kahvesi", topic.Slug)
	assert.Equal(t, 1, topic.EntryCount, "first entry is counted at creation")
	assert.Equal(t, 1, topics.compoundCalls)
	assert.Empty(t, topics.increments, "first entry must not go through the increment path")

	require.NotNil(t, entry)
	assert.Equal(t, topic.ID, entry.TopicID)
	assert.Equal(t, "kırk yıl hatırı olan içecek", entry.Content)
	assert.Equal(t, author().ID, entry.Author.ID)
	require.NotNil(t, entry.Topic)
	assert.Equal(t, topic.Slug, entry.Topic.Slug)

	ev := relay.last()
	require.NotNil(t, ev)
	assert.Equal(t, EventTopicUpdated, ev.Type)
	assert.Equal(t, author().ID, ev.ActorID)
}

func TestCreateTopicDuplicateSlug(t *testing.T) {
	topics := newFakeTopicRepo()
	topics.add(&entity.Topic{Title: "türk kahvesi", Slug: "turk-kahvesi"})
	svc := newTopicService(topics, nil)

	// Different title, same slug after folding.
	_, _, err := svc.Create(context.Background(), author(), CreateTopicInput{
		Title:      "TÜRK KAHVESİ",
		FirstEntry: "bu başlık zaten var olmalı",
	})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
	assert.Equal(t, 0, topics.compoundCalls, "nothing persisted on duplicate")
}

func TestCreateTopicValidation(t *testing.T) {
	svc := newTopicService(newFakeTopicRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateTopicInput
	}{
		{"short title", CreateTopicInput{Title: "ab", FirstEntry: strings.Repeat("x", 20)}},
		{"long title", CreateTopicInput{Title: strings.Repeat("a", 101), FirstEntry: strings.Repeat("x", 20)}},
		{"short first entry", CreateTopicInput{Title: "geçerli başlık", FirstEntry: "kısa"}},
		{"long first entry", CreateTopicInput{Title: "geçerli başlık", FirstEntry: strings.Repeat("x", 5001)}},
		{"long description", CreateTopicInput{Title: "geçerli başlık", Description: strings.Repeat("d", 501), FirstEntry: strings.Repeat("x", 20)}},
		{"symbol-only title", CreateTopicInput{Title: "!!! ???", FirstEntry: strings.Repeat("x", 20)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Create(ctx, author(), tc.in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateTopicRequiresAuth(t *testing.T) {
	svc := newTopicService(newFakeTopicRepo(), nil)
	_, _, err := svc.Create(context.Background(), nil, CreateTopicInput{
		Title:      "geçerli başlık",
		FirstEntry: strings.Repeat("x", 20),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListTopicsToday(t *testing.T) {
	topics := newFakeTopicRepo()
	now := time.Now()
	topics.add(&entity.Topic{Title: "bugün", Slug: "bugun", CreatedAt: now})
	topics.add(&entity.Topic{Title: "dün", Slug: "dun", CreatedAt: now.Add(-36 * time.Hour)})
	svc := newTopicService(topics, nil)

	got, total, err := svc.List(context.Background(), ListTopicsInput{Today: true, Page: NormalizePage(1, 20)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "bugun", got[0].Slug)
}

func TestListTopicsPopularOrdersByEntryCount(t *testing.T) {
	topics := newFakeTopicRepo()
	topics.add(&entity.Topic{Slug: "a", IsPopular: true, EntryCount: 3})
	topics.add(&entity.Topic{Slug: "b", IsPopular: true, EntryCount: 9})
	topics.add(&entity.Topic{Slug: "c", IsPopular: false, EntryCount: 50})
	svc := newTopicService(topics, nil)

	got, total, err := svc.List(context.Background(), ListTopicsInput{Popular: true, Page: NormalizePage(1, 20)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Slug)
	assert.Equal(t, "a", got[1].Slug)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := newTopicService(newFakeTopicRepo(), nil)
	_, err := svc.GetBySlug(context.Background(), "yok-boyle-bir-baslik")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
