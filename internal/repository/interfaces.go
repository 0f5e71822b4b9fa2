package repository

import (
	"context"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, input user.CreateUserInput) (*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, id int64, input user.UpdateUserInput) error
}

type PodcastRepository interface {
	Create(ctx context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error)
	GetByID(ctx context.Context, id int64) (*podcast.Podcast, error)
	List(ctx context.Context) ([]*podcast.Podcast, error)
	SearchByTitle(ctx context.Context, query string) ([]*podcast.Podcast, error)
	Update(ctx context.Context, id int64, input podcast.UpdatePodcastInput) error
	Delete(ctx context.Context, id int64) error
}

type EpisodeRepository interface {
	Create(ctx context.Context, input podcast.CreateEpisodeInput) (*podcast.Episode, error)
	GetByID(ctx context.Context, podcastID, episodeID int64) (*podcast.Episode, error)
	ListByPodcast(ctx context.Context, podcastID int64) ([]*podcast.Episode, error)
	Update(ctx context.Context, podcastID, episodeID int64, input podcast.UpdateEpisodeInput) error
	Delete(ctx context.Context, podcastID, episodeID int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, input podcast.CreateReviewInput) (*podcast.Review, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, input podcast.CreateSubscriptionInput) (*podcast.Subscription, error)
	ListByListener(ctx context.Context, listenerID int64) ([]*podcast.Subscription, error)
}
