package handler

import (
	"errors"
	"net/http"
	"strings"

	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository"
	apperrors "podcast-service/pkg/errors"
	"podcast-service/pkg/password"
	"podcast-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the caller's own record. The caller is supplied by the dispatch
// layer; the authenticated requirement guarantees it is non-nil.
func (h *UserHandler) Me(c echo.Context, caller *user.User) error {
	return respondOK(c, http.StatusOK, envelope{"user": newUserResponse(caller)})
}

func (h *UserHandler) SeeProfile(c echo.Context, _ *user.User) error {
	id, err := parseIDParam(c, paramID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	u, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondFail(c, http.StatusNotFound, msgUserNotFound)
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"user": newUserResponse(u)})
}

type EditProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// EditProfile changes only the fields present in the payload. A present,
// non-empty password is re-hashed before storage; an omitted or empty one
// leaves the stored hash untouched.
func (h *UserHandler) EditProfile(c echo.Context, caller *user.User) error {
	var req EditProfileRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	var input user.UpdateUserInput

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := validator.Email(email); err != nil {
			return respondFail(c, http.StatusBadRequest, err.Error())
		}
		input.Email = &email
	}

	if req.Password != nil && *req.Password != "" {
		if err := validator.Password(*req.Password); err != nil {
			return respondFail(c, http.StatusBadRequest, err.Error())
		}
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return respondFail(c, http.StatusInternalServerError, msgInternalError)
		}
		input.PasswordHash = &hash
	}

	if err := h.users.Update(c.Request().Context(), caller.ID, input); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return respondFail(c, http.StatusConflict, msgEmailAlreadyExists)
		case errors.Is(err, apperrors.ErrNotFound):
			return respondFail(c, http.StatusNotFound, msgUserNotFound)
		default:
			return respondFail(c, http.StatusInternalServerError, msgInternalError)
		}
	}

	return respondOK(c, http.StatusOK, nil)
}
