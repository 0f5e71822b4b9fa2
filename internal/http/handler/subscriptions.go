package handler

import (
	"net/http"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository"

	"github.com/labstack/echo/v4"
)

type SubscriptionHandler struct {
	podcasts      repository.PodcastRepository
	reviews       repository.ReviewRepository
	subscriptions repository.SubscriptionRepository
}

func NewSubscriptionHandler(
	podcasts repository.PodcastRepository,
	reviews repository.ReviewRepository,
	subscriptions repository.SubscriptionRepository,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		podcasts:      podcasts,
		reviews:       reviews,
		subscriptions: subscriptions,
	}
}

type ReviewPodcastRequest struct {
	Content string `json:"content"`
}

// Review records the caller's review of a podcast. Any failure collapses to
// the single caller-visible message.
func (h *SubscriptionHandler) Review(c echo.Context, caller *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req ReviewPodcastRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Content == "" {
		return respondFail(c, http.StatusBadRequest, msgContentRequired)
	}

	ctx := c.Request().Context()
	if _, err := h.podcasts.GetByID(ctx, id); err != nil {
		return respondFail(c, http.StatusNotFound, msgCannotReview)
	}

	_, err = h.reviews.Create(ctx, podcast.CreateReviewInput{
		PodcastID:  id,
		ListenerID: caller.ID,
		Content:    req.Content,
	})
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgCannotReview)
	}

	return respondOK(c, http.StatusCreated, nil)
}

func (h *SubscriptionHandler) Subscribe(c echo.Context, caller *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.podcasts.GetByID(ctx, id); err != nil {
		return respondFail(c, http.StatusNotFound, msgCannotSubscribe)
	}

	_, err = h.subscriptions.Create(ctx, podcast.CreateSubscriptionInput{
		PodcastID:  id,
		ListenerID: caller.ID,
	})
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgCannotSubscribe)
	}

	return respondOK(c, http.StatusCreated, nil)
}

func (h *SubscriptionHandler) ListSubscriptions(c echo.Context, caller *user.User) error {
	subs, err := h.subscriptions.ListByListener(c.Request().Context(), caller.ID)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgCannotGetSubs)
	}

	return respondOK(c, http.StatusOK, envelope{"subscriptions": newSubscriptionResponses(subs)})
}
