package postgres

import (
	"context"

	"podcast-service/internal/domain/podcast"
)

type SubscriptionRepository struct {
	db *DB
}

func NewSubscriptionRepository(db *DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, input podcast.CreateSubscriptionInput) (*podcast.Subscription, error) {
	query := `
		INSERT INTO subscriptions (podcast_id, listener_id)
		VALUES ($1, $2)
		RETURNING id, podcast_id, listener_id, created_at
	`

	s := &podcast.Subscription{}
	err := r.db.Pool.QueryRow(ctx, query, input.PodcastID, input.ListenerID).Scan(
		&s.ID,
		&s.PodcastID,
		&s.ListenerID,
		&s.CreatedAt,
	)

	if err != nil {
		return nil, errFailedCreateSubscription(err)
	}

	return s, nil
}

// ListByListener loads the listener's subscriptions together with the
// subscribed podcast records.
func (r *SubscriptionRepository) ListByListener(ctx context.Context, listenerID int64) ([]*podcast.Subscription, error) {
	query := `
		SELECT s.id, s.podcast_id, s.listener_id, s.created_at,
		       p.id, p.title, p.category, p.rating, p.created_at, p.updated_at
		FROM subscriptions s
		JOIN podcasts p ON p.id = s.podcast_id
		WHERE s.listener_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, listenerID)
	if err != nil {
		return nil, errFailedListSubscriptions(err)
	}
	defer rows.Close()

	var subscriptions []*podcast.Subscription
	for rows.Next() {
		s := &podcast.Subscription{Podcast: &podcast.Podcast{}}
		if err := rows.Scan(
			&s.ID,
			&s.PodcastID,
			&s.ListenerID,
			&s.CreatedAt,
			&s.Podcast.ID,
			&s.Podcast.Title,
			&s.Podcast.Category,
			&s.Podcast.Rating,
			&s.Podcast.CreatedAt,
			&s.Podcast.UpdatedAt,
		); err != nil {
			return nil, errFailedScanSubscription(err)
		}
		subscriptions = append(subscriptions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateSubscriptions(err)
	}

	return subscriptions, nil
}
