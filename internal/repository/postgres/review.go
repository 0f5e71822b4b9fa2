package postgres

import (
	"context"

	"podcast-service/internal/domain/podcast"
)

type ReviewRepository struct {
	db *DB
}

func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, input podcast.CreateReviewInput) (*podcast.Review, error) {
	query := `
		INSERT INTO reviews (podcast_id, listener_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, podcast_id, listener_id, content, created_at
	`

	rev := &podcast.Review{}
	err := r.db.Pool.QueryRow(ctx, query, input.PodcastID, input.ListenerID, input.Content).Scan(
		&rev.ID,
		&rev.PodcastID,
		&rev.ListenerID,
		&rev.Content,
		&rev.CreatedAt,
	)

	if err != nil {
		return nil, errFailedCreateReview(err)
	}

	return rev, nil
}
