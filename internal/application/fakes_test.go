package application

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/ozancz/sozluk/internal/domain/entity"
	repo "github.com/ozancz/sozluk/internal/domain/repository"
)

// In-memory repository fakes mirroring the store semantics: guarded set
// add/remove for likes, atomic count increments, transactional compound
// create.

type fakeUserRepo struct {
	users map[string]*entity.User // by id
	seq   int
	err   error // forced error for every call when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) nextID() string {
	f.seq++
	return "user-" + strconv.Itoa(f.seq)
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if u.ID == "" {
		u.ID = f.nextID()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

type fakeTopicRepo struct {
	topics        map[string]*entity.Topic
	seq           int
	increments    map[string]int // id -> applied delta sum
	incrementErr  error
	createdEntry  *entity.Entry // captured by CreateWithFirstEntry
	compoundCalls int
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: map[string]*entity.Topic{}, increments: map[string]int{}}
}

func (f *fakeTopicRepo) add(t *entity.Topic) *entity.Topic {
	if t.ID == "" {
		f.seq++
		t.ID = "topic-" + strconv.Itoa(f.seq)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	f.topics[t.ID] = t
	return t
}

func (f *fakeTopicRepo) CreateWithFirstEntry(_ context.Context, t *entity.Topic, e *entity.Entry) error {
	f.compoundCalls++
	f.add(t)
	f.seq++
	e.ID = "entry-" + strconv.Itoa(f.seq)
	e.TopicID = t.ID
	f.createdEntry = e
	return nil
}

func (f *fakeTopicRepo) GetByID(_ context.Context, id string) (*entity.Topic, error) {
	if t, ok := f.topics[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTopicRepo) GetBySlug(_ context.Context, slug string) (*entity.Topic, error) {
	for _, t := range f.topics {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTopicRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(context.Background(), slug)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeTopicRepo) List(_ context.Context, q repo.TopicQuery) ([]*entity.Topic, int64, error) {
	var out []*entity.Topic
	for _, t := range f.topics {
		if q.Popular && !t.IsPopular {
			continue
		}
		if !q.CreatedSince.IsZero() && t.CreatedAt.Before(q.CreatedSince) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	if q.Popular {
		sort.Slice(out, func(i, j int) bool {
			if out[i].EntryCount != out[j].EntryCount {
				return out[i].EntryCount > out[j].EntryCount
			}
			return out[i].ID < out[j].ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	total := int64(len(out))
	out = window(out, q.Offset, q.Limit)
	return out, total, nil
}

func (f *fakeTopicRepo) IncrementEntryCount(_ context.Context, id string, delta int) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	t, ok := f.topics[id]
	if !ok {
		return repo.ErrNotFound
	}
	t.EntryCount += delta
	f.increments[id] += delta
	return nil
}

type fakeEntryRepo struct {
	entries map[string]*entity.Entry
	seq     int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: map[string]*entity.Entry{}}
}

func (f *fakeEntryRepo) add(e *entity.Entry) *entity.Entry {
	if e.ID == "" {
		f.seq++
		e.ID = "entry-" + strconv.Itoa(f.seq)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Likes == nil {
		e.Likes = []string{}
	}
	f.entries[e.ID] = e
	return e
}

func (f *fakeEntryRepo) Create(_ context.Context, e *entity.Entry) error {
	f.add(e)
	return nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, id string) (*entity.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *e
	cp.Likes = append([]string{}, e.Likes...)
	return &cp, nil
}

func (f *fakeEntryRepo) List(_ context.Context, q repo.EntryQuery) ([]*entity.Entry, int64, error) {
	var out []*entity.Entry
	for _, e := range f.entries {
		if q.TopicID != "" && e.TopicID != q.TopicID {
			continue
		}
		if !q.CreatedFrom.IsZero() && e.CreatedAt.Before(q.CreatedFrom) {
			continue
		}
		if !q.CreatedBefore.IsZero() && !e.CreatedAt.Before(q.CreatedBefore) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	if q.ByLikes {
		sort.Slice(out, func(i, j int) bool {
			if len(out[i].Likes) != len(out[j].Likes) {
				return len(out[i].Likes) > len(out[j].Likes)
			}
			return out[i].ID < out[j].ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	total := int64(len(out))
	out = window(out, q.Offset, q.Limit)
	return out, total, nil
}

// AddLike mirrors the guarded set-add: adding a present id is a no-op.
func (f *fakeEntryRepo) AddLike(_ context.Context, entryID, userID string) error {
	e, ok := f.entries[entryID]
	if !ok {
		return repo.ErrNotFound
	}
	for _, id := range e.Likes {
		if id == userID {
			return nil
		}
	}
	e.Likes = append(e.Likes, userID)
	return nil
}

func (f *fakeEntryRepo) RemoveLike(_ context.Context, entryID, userID string) error {
	e, ok := f.entries[entryID]
	if !ok {
		return repo.ErrNotFound
	}
	kept := e.Likes[:0]
	for _, id := range e.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	e.Likes = kept
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
	seq      int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}}
}

func (f *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	f.seq++
	c.ID = "comment-" + strconv.Itoa(f.seq)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) ListByEntry(_ context.Context, entryID string, offset, limit int) ([]*entity.Comment, int64, error) {
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.EntryID == entryID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	out = window(out, offset, limit)
	return out, total, nil
}

// recordingRelay captures broadcast events for assertions.
type recordingRelay struct {
	events []Event
}

func (r *recordingRelay) Broadcast(_ context.Context, ev Event) {
	r.events = append(r.events, ev)
}

func (r *recordingRelay) last() *Event {
	if len(r.events) == 0 {
		return nil
	}
	return &r.events[len(r.events)-1]
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

var (
	_ repo.UserRepository    = (*fakeUserRepo)(nil)
	_ repo.TopicRepository   = (*fakeTopicRepo)(nil)
	_ repo.EntryRepository   = (*fakeEntryRepo)(nil)
	_ repo.CommentRepository = (*fakeCommentRepo)(nil)
)
