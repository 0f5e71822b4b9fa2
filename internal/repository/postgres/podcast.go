package postgres

import (
	"context"
	"fmt"

	"podcast-service/internal/domain/podcast"
	apperrors "podcast-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type PodcastRepository struct {
	db *DB
}

func NewPodcastRepository(db *DB) *PodcastRepository {
	return &PodcastRepository{db: db}
}

const podcastColumns = "id, title, category, rating, created_at, updated_at"

func (r *PodcastRepository) Create(ctx context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error) {
	query := `
		INSERT INTO podcasts (title, category)
		VALUES ($1, $2)
		RETURNING ` + podcastColumns

	p := &podcast.Podcast{}
	err := r.db.Pool.QueryRow(ctx, query, input.Title, input.Category).Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Rating,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		return nil, errFailedCreatePodcast(err)
	}

	return p, nil
}

func (r *PodcastRepository) GetByID(ctx context.Context, id int64) (*podcast.Podcast, error) {
	query := "SELECT " + podcastColumns + " FROM podcasts WHERE id = $1"

	p := &podcast.Podcast{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Rating,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errPodcastNotFound)
		}
		return nil, errFailedGetPodcast(err)
	}

	return p, nil
}

func (r *PodcastRepository) List(ctx context.Context) ([]*podcast.Podcast, error) {
	query := "SELECT " + podcastColumns + " FROM podcasts ORDER BY created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListPodcasts(err)
	}
	defer rows.Close()

	return collectPodcasts(rows)
}

func (r *PodcastRepository) SearchByTitle(ctx context.Context, query string) ([]*podcast.Podcast, error) {
	sql := "SELECT " + podcastColumns + ` FROM podcasts WHERE title ILIKE $1 ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, sql, "%"+escapeSearchPattern(query)+"%")
	if err != nil {
		return nil, errFailedListPodcasts(err)
	}
	defer rows.Close()

	return collectPodcasts(rows)
}

func collectPodcasts(rows pgx.Rows) ([]*podcast.Podcast, error) {
	var podcasts []*podcast.Podcast
	for rows.Next() {
		p := &podcast.Podcast{}
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Category,
			&p.Rating,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, errFailedScanPodcast(err)
		}
		podcasts = append(podcasts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errIteratePodcasts(err)
	}

	return podcasts, nil
}

func (r *PodcastRepository) Update(ctx context.Context, id int64, input podcast.UpdatePodcastInput) error {
	query := "UPDATE podcasts SET updated_at = NOW()"
	args := []interface{}{id}
	argCount := 1

	if input.Title != nil {
		argCount++
		query += fmt.Sprintf(", title = $%d", argCount)
		args = append(args, *input.Title)
	}

	if input.Category != nil {
		argCount++
		query += fmt.Sprintf(", category = $%d", argCount)
		args = append(args, *input.Category)
	}

	if input.Rating != nil {
		argCount++
		query += fmt.Sprintf(", rating = $%d", argCount)
		args = append(args, *input.Rating)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return errFailedUpdatePodcast(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errPodcastNotFound)
	}

	return nil
}

func (r *PodcastRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM podcasts WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeletePodcast(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errPodcastNotFound)
	}

	return nil
}
