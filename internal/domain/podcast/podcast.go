package podcast

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Podcast struct {
	ID        int64
	Title     string
	Category  string
	Rating    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreatePodcastInput struct {
	Title    string
	Category string
}

type UpdatePodcastInput struct {
	Title    *string
	Category *string
	Rating   *float64
}

type Episode struct {
	ID        int64
	PodcastID int64
	Title     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateEpisodeInput struct {
	PodcastID int64
	Title     string
	Category  string
}

type UpdateEpisodeInput struct {
	Title    *string
	Category *string
}

type Review struct {
	ID         int64
	PodcastID  int64
	ListenerID int64
	Content    string
	CreatedAt  time.Time
}

type CreateReviewInput struct {
	PodcastID  int64
	ListenerID int64
	Content    string
}

// Subscription links a listener to a podcast. Podcast is populated when the
// subscription is loaded together with its podcast record.
type Subscription struct {
	ID         int64
	PodcastID  int64
	ListenerID int64
	CreatedAt  time.Time
	Podcast    *Podcast
}

type CreateSubscriptionInput struct {
	PodcastID  int64
	ListenerID int64
}
