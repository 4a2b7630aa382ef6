package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozancz/sozluk/internal/domain/entity"
)

func commentFixture() (*CommentService, *fakeCommentRepo, *fakeEntryRepo, *recordingRelay) {
	comments := newFakeCommentRepo()
	entries := newFakeEntryRepo()
	relay := &recordingRelay{}
	return NewCommentService(comments, entries, relay, nil), comments, entries, relay
}

func TestCreateComment(t *testing.T) {
	svc, comments, entries, relay := commentFixture()
	e := entries.add(&entity.Entry{Content: "girdi"})

	c, err := svc.Create(context.Background(), author(), CreateCommentInput{
		EntryID: e.ID,
		Content: "güzel tespit",
	})
	require.NoError(t, err)
	assert.Equal(t, e.ID, c.EntryID)
	assert.Equal(t, author().ID, c.Author.ID)
	assert.Len(t, comments.comments, 1)

	ev := relay.last()
	require.NotNil(t, ev)
	assert.Equal(t, EventNewComment, ev.Type)
	assert.Equal(t, author().ID, ev.ActorID)
}

func TestCreateCommentValidation(t *testing.T) {
	svc, _, entries, _ := commentFixture()
	e := entries.add(&entity.Entry{Content: "girdi"})
	ctx := context.Background()

	for _, content := range []string{"", "   ", strings.Repeat("x", 1001)} {
		_, err := svc.Create(ctx, author(), CreateCommentInput{EntryID: e.ID, Content: content})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}

	_, err := svc.Create(ctx, nil, CreateCommentInput{EntryID: e.ID, Content: "yorum"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Create(ctx, author(), CreateCommentInput{EntryID: "entry-missing", Content: "yorum"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestListCommentsRequiresEntry(t *testing.T) {
	svc, comments, entries, _ := commentFixture()
	e := entries.add(&entity.Entry{Content: "girdi"})
	other := entries.add(&entity.Entry{Content: "başka girdi"})
	_ = comments.Create(context.Background(), &entity.Comment{Content: "bir", EntryID: e.ID})
	_ = comments.Create(context.Background(), &entity.Comment{Content: "iki", EntryID: other.ID})

	got, total, err := svc.List(context.Background(), e.ID, NormalizePage(1, 20))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "bir", got[0].Content)

	_, _, err = svc.List(context.Background(), "entry-missing", NormalizePage(1, 20))
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, _, err = svc.List(context.Background(), "", NormalizePage(1, 20))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
