package handler

import (
	"time"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"

	"github.com/labstack/echo/v4"
)

type envelope map[string]any

func respondOK(c echo.Context, status int, extra envelope) error {
	body := envelope{jsonKeyOK: true}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(status, body)
}

func respondFail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{jsonKeyOK: false, jsonKeyError: message})
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type podcastResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPodcastResponse(p *podcast.Podcast) podcastResponse {
	return podcastResponse{
		ID:        p.ID,
		Title:     p.Title,
		Category:  p.Category,
		Rating:    p.Rating,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPodcastResponses(podcasts []*podcast.Podcast) []podcastResponse {
	out := make([]podcastResponse, 0, len(podcasts))
	for _, p := range podcasts {
		out = append(out, newPodcastResponse(p))
	}
	return out
}

type episodeResponse struct {
	ID        int64     `json:"id"`
	PodcastID int64     `json:"podcast_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEpisodeResponse(e *podcast.Episode) episodeResponse {
	return episodeResponse{
		ID:        e.ID,
		PodcastID: e.PodcastID,
		Title:     e.Title,
		Category:  e.Category,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func newEpisodeResponses(episodes []*podcast.Episode) []episodeResponse {
	out := make([]episodeResponse, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, newEpisodeResponse(e))
	}
	return out
}

type subscriptionResponse struct {
	ID        int64            `json:"id"`
	Podcast   *podcastResponse `json:"podcast,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func newSubscriptionResponses(subs []*podcast.Subscription) []subscriptionResponse {
	out := make([]subscriptionResponse, 0, len(subs))
	for _, s := range subs {
		resp := subscriptionResponse{ID: s.ID, CreatedAt: s.CreatedAt}
		if s.Podcast != nil {
			p := newPodcastResponse(s.Podcast)
			resp.Podcast = &p
		}
		out = append(out, resp)
	}
	return out
}
