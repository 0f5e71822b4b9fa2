package handler

import (
	"errors"
	"fmt"
	"net/http"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository"
	apperrors "podcast-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type EpisodeHandler struct {
	podcasts repository.PodcastRepository
	episodes repository.EpisodeRepository
}

func NewEpisodeHandler(podcasts repository.PodcastRepository, episodes repository.EpisodeRepository) *EpisodeHandler {
	return &EpisodeHandler{podcasts: podcasts, episodes: episodes}
}

// requirePodcast resolves the :id path param to an existing podcast. Episode
// operations answer with the podcast-level not-found message when the parent
// is missing.
func (h *EpisodeHandler) requirePodcast(c echo.Context) (int64, error) {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return 0, handleHTTPError(c, err)
	}

	if _, err := h.podcasts.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtPodcastNotFound, id))
		}
		return 0, respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return id, nil
}

func (h *EpisodeHandler) List(c echo.Context, _ *user.User) error {
	podcastID, err := h.requirePodcast(c)
	if err != nil {
		return err
	}

	episodes, err := h.episodes.ListByPodcast(c.Request().Context(), podcastID)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"episodes": newEpisodeResponses(episodes)})
}

func (h *EpisodeHandler) Get(c echo.Context, _ *user.User) error {
	podcastID, err := h.requirePodcast(c)
	if err != nil {
		return err
	}

	episodeID, err := parseIDParam(c, paramEpisodeID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	e, err := h.episodes.GetByID(c.Request().Context(), podcastID, episodeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtEpisodeNotFound, episodeID, podcastID))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"episode": newEpisodeResponse(e)})
}

type CreateEpisodeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (h *EpisodeHandler) Create(c echo.Context, _ *user.User) error {
	podcastID, err := h.requirePodcast(c)
	if err != nil {
		return err
	}

	var req CreateEpisodeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Title == "" || req.Category == "" {
		return respondFail(c, http.StatusBadRequest, msgTitleCategoryRequired)
	}

	e, err := h.episodes.Create(c.Request().Context(), podcast.CreateEpisodeInput{
		PodcastID: podcastID,
		Title:     req.Title,
		Category:  req.Category,
	})
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusCreated, envelope{"id": e.ID})
}

type UpdateEpisodeRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

func (h *EpisodeHandler) Update(c echo.Context, _ *user.User) error {
	podcastID, err := h.requirePodcast(c)
	if err != nil {
		return err
	}

	episodeID, err := parseIDParam(c, paramEpisodeID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req UpdateEpisodeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	err = h.episodes.Update(c.Request().Context(), podcastID, episodeID, podcast.UpdateEpisodeInput{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtEpisodeNotFound, episodeID, podcastID))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, nil)
}

func (h *EpisodeHandler) Delete(c echo.Context, _ *user.User) error {
	podcastID, err := h.requirePodcast(c)
	if err != nil {
		return err
	}

	episodeID, err := parseIDParam(c, paramEpisodeID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	if err := h.episodes.Delete(c.Request().Context(), podcastID, episodeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, fmt.Sprintf(fmtEpisodeNotFound, episodeID, podcastID))
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, nil)
}
