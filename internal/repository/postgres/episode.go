package postgres

import (
	"context"
	"fmt"

	"podcast-service/internal/domain/podcast"
	apperrors "podcast-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type EpisodeRepository struct {
	db *DB
}

func NewEpisodeRepository(db *DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

const episodeColumns = "id, podcast_id, title, category, created_at, updated_at"

func (r *EpisodeRepository) Create(ctx context.Context, input podcast.CreateEpisodeInput) (*podcast.Episode, error) {
	query := `
		INSERT INTO episodes (podcast_id, title, category)
		VALUES ($1, $2, $3)
		RETURNING ` + episodeColumns

	e := &podcast.Episode{}
	err := r.db.Pool.QueryRow(ctx, query, input.PodcastID, input.Title, input.Category).Scan(
		&e.ID,
		&e.PodcastID,
		&e.Title,
		&e.Category,
		&e.CreatedAt,
		&e.UpdatedAt,
	)

	if err != nil {
		return nil, errFailedCreateEpisode(err)
	}

	return e, nil
}

func (r *EpisodeRepository) GetByID(ctx context.Context, podcastID, episodeID int64) (*podcast.Episode, error) {
	query := "SELECT " + episodeColumns + " FROM episodes WHERE id = $1 AND podcast_id = $2"

	e := &podcast.Episode{}
	err := r.db.Pool.QueryRow(ctx, query, episodeID, podcastID).Scan(
		&e.ID,
		&e.PodcastID,
		&e.Title,
		&e.Category,
		&e.CreatedAt,
		&e.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errEpisodeNotFound)
		}
		return nil, errFailedGetEpisode(err)
	}

	return e, nil
}

func (r *EpisodeRepository) ListByPodcast(ctx context.Context, podcastID int64) ([]*podcast.Episode, error) {
	query := "SELECT " + episodeColumns + " FROM episodes WHERE podcast_id = $1 ORDER BY created_at"

	rows, err := r.db.Pool.Query(ctx, query, podcastID)
	if err != nil {
		return nil, errFailedListEpisodes(err)
	}
	defer rows.Close()

	var episodes []*podcast.Episode
	for rows.Next() {
		e := &podcast.Episode{}
		if err := rows.Scan(
			&e.ID,
			&e.PodcastID,
			&e.Title,
			&e.Category,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, errFailedScanEpisode(err)
		}
		episodes = append(episodes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateEpisodes(err)
	}

	return episodes, nil
}

func (r *EpisodeRepository) Update(ctx context.Context, podcastID, episodeID int64, input podcast.UpdateEpisodeInput) error {
	query := "UPDATE episodes SET updated_at = NOW()"
	args := []interface{}{episodeID, podcastID}
	argCount := 2

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

	query += " WHERE id = $1 AND podcast_id = $2"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return errFailedUpdateEpisode(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errEpisodeNotFound)
	}

	return nil
}

func (r *EpisodeRepository) Delete(ctx context.Context, podcastID, episodeID int64) error {
	query := "DELETE FROM episodes WHERE id = $1 AND podcast_id = $2"

	result, err := r.db.Pool.Exec(ctx, query, episodeID, podcastID)
	if err != nil {
		return errFailedDeleteEpisode(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errEpisodeNotFound)
	}

	return nil
}
