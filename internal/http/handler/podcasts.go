package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository"
	apperrors "podcast-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type PodcastHandler struct {
	podcasts repository.PodcastRepository
}

func NewPodcastHandler(podcasts repository.PodcastRepository) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts}
}

func (h *PodcastHandler) List(c echo.Context, _ *user.User) error {
	podcasts, err := h.podcasts.List(c.Request().Context())
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"podcasts": newPodcastResponses(podcasts)})
}

func (h *PodcastHandler) Search(c echo.Context, _ *user.User) error {
	query := strings.TrimSpace(c.QueryParam(queryParamSearch))
	if query == "" {
		return respondFail(c, http.StatusBadRequest, msgQueryRequired)
	}

	podcasts, err := h.podcasts.SearchByTitle(c.Request().Context(), query)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	if len(podcasts) == 0 {
		return respondFail(c, http.StatusNotFound, msgPodcastsNotFound)
	}

	return respondOK(c, http.StatusOK, envelope{"podcasts": newPodcastResponses(podcasts)})
}

type CreatePodcastRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (h *PodcastHandler) Create(c echo.Context, _ *user.User) error {
	var req CreatePodcastRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Title == "" || req.Category == "" {
		return respondFail(c, http.StatusBadRequest, msgTitleCategoryRequired)
	}

	p, err := h.podcasts.Create(c.Request().Context(), podcast.CreatePodcastInput{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusCreated, envelope{"id": p.ID})
}

func (h *PodcastHandler) Get(c echo.Context, _ *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	p, err := h.podcasts.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtPodcastNotFound, id))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"podcast": newPodcastResponse(p)})
}

type UpdatePodcastRequest struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Rating   *float64 `json:"rating"`
}

func (h *PodcastHandler) Update(c echo.Context, _ *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req UpdatePodcastRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Rating != nil && (*req.Rating < podcast.MinRating || *req.Rating > podcast.MaxRating) {
		return respondFail(c, http.StatusBadRequest, msgRatingOutOfBounds)
	}

	err = h.podcasts.Update(c.Request().Context(), id, podcast.UpdatePodcastInput{
		Title:    req.Title,
		Category: req.Category,
		Rating:   req.Rating,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtPodcastNotFound, id))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, nil)
}

func (h *PodcastHandler) Delete(c echo.Context, _ *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	if err := h.podcasts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtPodcastNotFound, id))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, nil)
}
