package handler

import (
	"errors"
	"net/http"
	"strings"

	"podcast-service/internal/auth"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository"
	apperrors "podcast-service/pkg/errors"
	"podcast-service/pkg/password"
	"podcast-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

// Pre-computed bcrypt hash used to equalize timing on failed lookups.
// The actual plaintext is irrelevant.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(users repository.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c echo.Context, _ *user.User) error {
	var req SignupRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Email(req.Email); err != nil {
		return respondFail(c, http.StatusBadRequest, err.Error())
	}

	if err := validator.Password(req.Password); err != nil {
		return respondFail(c, http.StatusBadRequest, err.Error())
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleListener
	}
	if !role.Valid() {
		return respondFail(c, http.StatusBadRequest, msgInvalidRole)
	}

	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	_, err = h.users.Create(c.Request().Context(), user.CreateUserInput{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return respondFail(c, http.StatusConflict, msgEmailAlreadyExists)
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusCreated, nil)
}

func (h *AuthHandler) Login(c echo.Context, _ *user.User) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		password.Verify(req.Password, dummyBcryptHash)
		return respondFail(c, http.StatusUnauthorized, msgUserNotFound)
	}

	u, err := h.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Run bcrypt against a dummy hash to prevent a timing oracle
			// leaking email existence.
			password.Verify(req.Password, dummyBcryptHash)
			return respondFail(c, http.StatusUnauthorized, msgUserNotFound)
		}
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	ok, err := password.Verify(req.Password, u.PasswordHash)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}
	if !ok {
		return respondFail(c, http.StatusUnauthorized, msgWrongPassword)
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		return respondFail(c, http.StatusInternalServerError, msgInternalError)
	}

	return respondOK(c, http.StatusOK, envelope{"token": token})
}
