package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozancz/sozluk/internal/domain/entity"
	"github.com/ozancz/sozluk/internal/domain/repository"
)

type TopicRepository struct {
	pool *pgxpool.Pool
}

func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

const topicSelect = `
	SELECT t.id, t.title, t.slug, t.description, t.author_id, t.entry_count,
	       t.is_popular, t.is_featured, t.tags, t.created_at, t.updated_at,
	       u.id, u.username, u.display_name
	FROM topics t
	JOIN users u ON u.id = t.author_id
`

func scanTopic(row pgx.Row) (*entity.Topic, error) {
	t := &entity.Topic{Author: &entity.Author{}}
	if err := row.Scan(&t.ID, &t.Title, &t.Slug, &t.Description, &t.AuthorID, &t.EntryCount,
		&t.IsPopular, &t.IsFeatured, &t.Tags, &t.CreatedAt, &t.UpdatedAt,
		&t.Author.ID, &t.Author.Username, &t.Author.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

// CreateWithFirstEntry writes the topic and its mandatory first entry in one
// transaction. The topic row carries entry_count preset by the caller, so the
// first entry must not go through IncrementEntryCount.
func (r *TopicRepository) CreateWithFirstEntry(ctx context.Context, t *entity.Topic, e *entity.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO topics (title, slug, description, author_id, entry_count, is_popular, is_featured, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Slug, t.Description, t.AuthorID, t.EntryCount, t.IsPopular, t.IsFeatured, t.Tags)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return err
	}

	e.TopicID = t.ID
	row = tx.QueryRow(ctx, `
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

	return tx.Commit(ctx)
}

func (r *TopicRepository) GetByID(ctx context.Context, id string) (*entity.Topic, error) {
	return scanTopic(r.pool.QueryRow(ctx, topicSelect+` WHERE t.id = $1`, id))
}

func (r *TopicRepository) GetBySlug(ctx context.Context, slug string) (*entity.Topic, error) {
	return scanTopic(r.pool.QueryRow(ctx, topicSelect+` WHERE t.slug = $1`, slug))
}

func (r *TopicRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *TopicRepository) List(ctx context.Context, q repository.TopicQuery) ([]*entity.Topic, int64, error) {
	where := ` WHERE TRUE`
	args := []any{}
	if q.Popular {
		where += ` AND t.is_popular`
	}
	if !q.CreatedSince.IsZero() {
		args = append(args, q.CreatedSince)
		where += ` AND t.created_at >= $1`
	}

	order := ` ORDER BY t.created_at DESC`
	if q.Popular {
		order = ` ORDER BY t.entry_count DESC, t.id ASC`
	}

	countArgs := append([]any{}, args...)
	var total int64
	countWhere := where
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM topics t`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	args = append(args, q.Limit, q.Offset)
	rows, err := r.pool.Query(ctx, topicSelect+where+order+
		` LIMIT $`+itoa(limitPos)+` OFFSET $`+itoa(limitPos+1), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	topics := make([]*entity.Topic, 0, q.Limit)
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, 0, err
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

// IncrementEntryCount issues the increment as a single atomic UPDATE so
// concurrent entry creation against one topic serializes in the store.
func (r *TopicRepository) IncrementEntryCount(ctx context.Context, id string, delta int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE topics SET entry_count = entry_count + $2, updated_at = now() WHERE id = $1
	`, id, delta)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TopicRepository = (*TopicRepository)(nil)
