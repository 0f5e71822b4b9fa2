package handler

import (
	"net/http"
	"testing"

	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository/memory"
)

type subscriptionFixture struct {
	handler       *SubscriptionHandler
	users         *memory.UserRepository
	podcasts      *memory.PodcastRepository
	reviews       *memory.ReviewRepository
	subscriptions *memory.SubscriptionRepository
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()

	users := memory.NewUserRepository()
	podcasts := memory.NewPodcastRepository()
	reviews := memory.NewReviewRepository()
	subscriptions := memory.NewSubscriptionRepository(podcasts)

	return &subscriptionFixture{
		handler:       NewSubscriptionHandler(podcasts, reviews, subscriptions),
		users:         users,
		podcasts:      podcasts,
		reviews:       reviews,
		subscriptions: subscriptions,
	}
}

func TestReviewPodcast(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)
	createTestPodcast(t, f.podcasts, "Go Time", "tech")

	c, rec := newJSONContext(t, http.MethodPost, "/podcasts/1/reviews",
		`{"content":"great show"}`)
	c.SetParamNames(paramID)
	c.SetParamValues("1")
	if err := f.handler.Review(c, listener); err != nil {
		t.Fatalf("review: %v", err)
	}
	assertOK(t, rec, http.StatusCreated)

	if len(f.reviews.Reviews) != 1 {
		t.Fatalf("expected 1 stored review, got %d", len(f.reviews.Reviews))
	}
	stored := f.reviews.Reviews[0]
	if stored.PodcastID != 1 || stored.ListenerID != listener.ID || stored.Content != "great show" {
		t.Fatalf("unexpected stored review: %+v", stored)
	}
}

func TestReviewPodcastMissingPodcast(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)

	c, rec := newJSONContext(t, http.MethodPost, "/podcasts/9/reviews",
		`{"content":"great show"}`)
	c.SetParamNames(paramID)
	c.SetParamValues("9")
	if err := f.handler.Review(c, listener); err != nil {
		t.Fatalf("review: %v", err)
	}
	assertFail(t, rec, http.StatusNotFound, "Couldn't review podcast")
}

func TestReviewPodcastEmptyContent(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)
	createTestPodcast(t, f.podcasts, "Go Time", "tech")

	c, rec := newJSONContext(t, http.MethodPost, "/podcasts/1/reviews", `{"content":""}`)
	c.SetParamNames(paramID)
	c.SetParamValues("1")
	if err := f.handler.Review(c, listener); err != nil {
		t.Fatalf("review: %v", err)
	}
	assertFail(t, rec, http.StatusBadRequest, msgContentRequired)
}

func TestSubscribePodcast(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)
	createTestPodcast(t, f.podcasts, "Go Time", "tech")

	c, rec := newJSONContext(t, http.MethodPost, "/podcasts/1/subscriptions", "")
	c.SetParamNames(paramID)
	c.SetParamValues("1")
	if err := f.handler.Subscribe(c, listener); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	assertOK(t, rec, http.StatusCreated)
}

func TestSubscribePodcastMissingPodcast(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)

	c, rec := newJSONContext(t, http.MethodPost, "/podcasts/9/subscriptions", "")
	c.SetParamNames(paramID)
	c.SetParamValues("9")
	if err := f.handler.Subscribe(c, listener); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	assertFail(t, rec, http.StatusNotFound, "Couldn't subscribe podcast")
}

func TestListSubscriptions(t *testing.T) {
	f := newSubscriptionFixture(t)
	listener := createTestUser(t, f.users, "listener@test.com", "pw", user.RoleListener)
	other := createTestUser(t, f.users, "other@test.com", "pw", user.RoleListener)
	createTestPodcast(t, f.podcasts, "Go Time", "tech")
	createTestPodcast(t, f.podcasts, "Hard Fork", "news")

	subscribe := func(u *user.User, podcastID string) {
		c, _ := newJSONContext(t, http.MethodPost, "/podcasts/"+podcastID+"/subscriptions", "")
		c.SetParamNames(paramID)
		c.SetParamValues(podcastID)
		if err := f.handler.Subscribe(c, u); err != nil {
			t.Fatalf("subscribe: %v", err)
		}
	}
	subscribe(listener, "1")
	subscribe(other, "2")

	c, rec := newJSONContext(t, http.MethodGet, "/subscriptions", "")
	if err := f.handler.ListSubscriptions(c, listener); err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	body := assertOK(t, rec, http.StatusOK)

	subs, _ := body["subscriptions"].([]any)
	if len(subs) != 1 {
		t.Fatalf("expected only the caller's subscriptions, got %d", len(subs))
	}

	first, _ := subs[0].(map[string]any)
	p, _ := first["podcast"].(map[string]any)
	if p["title"] != "Go Time" {
		t.Fatalf("expected embedded podcast, got %v", first)
	}
}
