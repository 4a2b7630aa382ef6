package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozancz/sozluk/internal/domain/entity"
	"github.com/ozancz/sozluk/internal/domain/repository"
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entrySelect = `
	SELECT e.id, e.content, e.author_id, e.topic_id, e.likes, e.is_edited, e.is_featured,
	       e.created_at, e.updated_at,
	       u.id, u.username, u.display_name,
	       t.id, t.title, t.slug
	FROM entries e
	JOIN users u ON u.id = e.author_id
	JOIN topics t ON t.id = e.topic_id
`

func scanEntry(row pgx.Row) (*entity.Entry, error) {
	e := &entity.Entry{Author: &entity.Author{}, Topic: &entity.TopicRef{}}
	if err := row.Scan(&e.ID, &e.Content, &e.AuthorID, &e.TopicID, &e.Likes, &e.IsEdited, &e.IsFeatured,
		&e.CreatedAt, &e.UpdatedAt,
		&e.Author.ID, &e.Author.Username, &e.Author.DisplayName,
		&e.Topic.ID, &e.Topic.Title, &e.Topic.Slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if e.Likes == nil {
		e.Likes = []string{}
	}
	return e, nil
}

func (r *EntryRepository) Create(ctx context.Context, e *entity.Entry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO entries (content, author_id, topic_id, likes, is_edited, is_featured)
		VALUES ($1, $2, $3, '{}', FALSE, FALSE)
		RETURNING id, created_at, updated_at
	`, e.Content, e.AuthorID, e.TopicID)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return err
	}
	if e.Likes == nil {
		e.Likes = []string{}
	}
	return nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id string) (*entity.Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx, entrySelect+` WHERE e.id = $1`, id))
}

func (r *EntryRepository) List(ctx context.Context, q repository.EntryQuery) ([]*entity.Entry, int64, error) {
	where := ` WHERE TRUE`
	args := []any{}
	if q.TopicID != "" {
		args = append(args, q.TopicID)
		where += ` AND e.topic_id = $` + itoa(len(args))
	}
	if !q.CreatedFrom.IsZero() {
		args = append(args, q.CreatedFrom)
		where += ` AND e.created_at >= $` + itoa(len(args))
	}
	if !q.CreatedBefore.IsZero() {
		args = append(args, q.CreatedBefore)
		where += ` AND e.created_at < $` + itoa(len(args))
	}

	// Tie-break on id keeps like-ranked pages deterministic.
	order := ` ORDER BY e.created_at DESC`
	if q.ByLikes {
		order = ` ORDER BY cardinality(e.likes) DESC, e.id ASC`
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries e`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.pool.Query(ctx, entrySelect+where+order+
		` LIMIT $`+itoa(len(args)-1)+` OFFSET $`+itoa(len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]*entity.Entry, 0, q.Limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// AddLike appends the user to the liker set in one guarded UPDATE: the
// membership predicate keeps set semantics, so a concurrent duplicate add
// degrades to a no-op instead of a double entry.
func (r *EntryRepository) AddLike(ctx context.Context, entryID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE entries
		SET likes = array_append(likes, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(likes))
	`, entryID, userID)
	return err
}

// RemoveLike removes the user from the liker set; removing an absent id is a
// storage-level no-op.
func (r *EntryRepository) RemoveLike(ctx context.Context, entryID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE entries
		SET likes = array_remove(likes, $2::uuid), updated_at = now()
		WHERE id = $1 AND $2 = ANY(likes)
	`, entryID, userID)
	return err
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
