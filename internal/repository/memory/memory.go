// Package memory provides in-memory repository implementations. They back
// the handler and server tests and are handy for running the service without
// a database.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
	apperrors "podcast-service/pkg/errors"
)

const (
	errUserNotFound       = "user not found"
	errPodcastNotFound    = "podcast not found"
	errEpisodeNotFound    = "episode not found"
	errEmailAlreadyExists = "user with this email already exists"
)

type UserRepository struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]user.User

	// Lookups counts GetByID calls, letting tests assert on the
	// one-lookup-per-request middleware contract.
	Lookups int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]user.User)}
}

func (r *UserRepository) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == input.Email {
			return nil, apperrors.Conflict(errEmailAlreadyExists)
		}
	}

	r.seq++
	now := time.Now()
	u := user.User{
		ID:           r.seq,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u

	out := u
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Lookups++
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound(errUserNotFound)
	}

	out := u
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, apperrors.NotFound(errUserNotFound)
}

func (r *UserRepository) Update(ctx context.Context, id int64, input user.UpdateUserInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return apperrors.NotFound(errUserNotFound)
	}

	if input.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *input.Email {
				return apperrors.Conflict(errEmailAlreadyExists)
			}
		}
		u.Email = *input.Email
	}

	if input.PasswordHash != nil {
		u.PasswordHash = *input.PasswordHash
	}

	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type PodcastRepository struct {
	mu       sync.Mutex
	seq      int64
	podcasts map[int64]podcast.Podcast
}

func NewPodcastRepository() *PodcastRepository {
	return &PodcastRepository{podcasts: make(map[int64]podcast.Podcast)}
}

func (r *PodcastRepository) Create(ctx context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Now()
	p := podcast.Podcast{
		ID:        r.seq,
		Title:     input.Title,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.podcasts[p.ID] = p

	out := p
	return &out, nil
}

func (r *PodcastRepository) GetByID(ctx context.Context, id int64) (*podcast.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.podcasts[id]
	if !ok {
		return nil, apperrors.NotFound(errPodcastNotFound)
	}

	out := p
	return &out, nil
}

func (r *PodcastRepository) List(ctx context.Context) ([]*podcast.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*podcast.Podcast
	for id := int64(1); id <= r.seq; id++ {
		if p, ok := r.podcasts[id]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PodcastRepository) SearchByTitle(ctx context.Context, query string) ([]*podcast.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*podcast.Podcast
	for id := int64(1); id <= r.seq; id++ {
		p, ok := r.podcasts[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PodcastRepository) Update(ctx context.Context, id int64, input podcast.UpdatePodcastInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.podcasts[id]
	if !ok {
		return apperrors.NotFound(errPodcastNotFound)
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Rating != nil {
		p.Rating = *input.Rating
	}

	p.UpdatedAt = time.Now()
	r.podcasts[id] = p
	return nil
}

func (r *PodcastRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.podcasts[id]; !ok {
		return apperrors.NotFound(errPodcastNotFound)
	}
	delete(r.podcasts, id)
	return nil
}

type EpisodeRepository struct {
	mu       sync.Mutex
	seq      int64
	episodes map[int64]podcast.Episode
}

func NewEpisodeRepository() *EpisodeRepository {
	return &EpisodeRepository{episodes: make(map[int64]podcast.Episode)}
}

func (r *EpisodeRepository) Create(ctx context.Context, input podcast.CreateEpisodeInput) (*podcast.Episode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Now()
	e := podcast.Episode{
		ID:        r.seq,
		PodcastID: input.PodcastID,
		Title:     input.Title,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.episodes[e.ID] = e

	out := e
	return &out, nil
}

func (r *EpisodeRepository) GetByID(ctx context.Context, podcastID, episodeID int64) (*podcast.Episode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.episodes[episodeID]
	if !ok || e.PodcastID != podcastID {
		return nil, apperrors.NotFound(errEpisodeNotFound)
	}

	out := e
	return &out, nil
}

func (r *EpisodeRepository) ListByPodcast(ctx context.Context, podcastID int64) ([]*podcast.Episode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*podcast.Episode
	for id := int64(1); id <= r.seq; id++ {
		e, ok := r.episodes[id]
		if !ok || e.PodcastID != podcastID {
			continue
		}
		cp := e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *EpisodeRepository) Update(ctx context.Context, podcastID, episodeID int64, input podcast.UpdateEpisodeInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.episodes[episodeID]
	if !ok || e.PodcastID != podcastID {
		return apperrors.NotFound(errEpisodeNotFound)
	}

	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Category != nil {
		e.Category = *input.Category
	}

	e.UpdatedAt = time.Now()
	r.episodes[episodeID] = e
	return nil
}

func (r *EpisodeRepository) Delete(ctx context.Context, podcastID, episodeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.episodes[episodeID]
	if !ok || e.PodcastID != podcastID {
		return apperrors.NotFound(errEpisodeNotFound)
	}
	delete(r.episodes, episodeID)
	return nil
}

type ReviewRepository struct {
	mu      sync.Mutex
	seq     int64
	Reviews []podcast.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, input podcast.CreateReviewInput) (*podcast.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rev := podcast.Review{
		ID:         r.seq,
		PodcastID:  input.PodcastID,
		ListenerID: input.ListenerID,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}
	r.Reviews = append(r.Reviews, rev)

	out := rev
	return &out, nil
}

type SubscriptionRepository struct {
	mu       sync.Mutex
	seq      int64
	subs     []podcast.Subscription
	podcasts *PodcastRepository
}

// NewSubscriptionRepository joins subscriptions against the given podcast
// repository when listing, mirroring the SQL implementation.
func NewSubscriptionRepository(podcasts *PodcastRepository) *SubscriptionRepository {
	return &SubscriptionRepository{podcasts: podcasts}
}

func (r *SubscriptionRepository) Create(ctx context.Context, input podcast.CreateSubscriptionInput) (*podcast.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s := podcast.Subscription{
		ID:         r.seq,
		PodcastID:  input.PodcastID,
		ListenerID: input.ListenerID,
		CreatedAt:  time.Now(),
	}
	r.subs = append(r.subs, s)

	out := s
	return &out, nil
}

func (r *SubscriptionRepository) ListByListener(ctx context.Context, listenerID int64) ([]*podcast.Subscription, error) {
	r.mu.Lock()
	subs := make([]podcast.Subscription, len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	var out []*podcast.Subscription
	for _, s := range subs {
		if s.ListenerID != listenerID {
			continue
		}
		cp := s
		if p, err := r.podcasts.GetByID(ctx, s.PodcastID); err == nil {
			cp.Podcast = p
		}
		out = append(out, &cp)
	}
	return out, nil
}
