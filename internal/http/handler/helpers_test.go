package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"podcast-service/internal/domain/podcast"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/repository/memory"
	"podcast-service/pkg/password"

	"github.com/labstack/echo/v4"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func assertFail(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (body %s)", status, rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["ok"] != false {
		t.Fatalf("expected ok=false, got %v", body)
	}
	if body["error"] != message {
		t.Fatalf("expected error %q, got %q", message, body["error"])
	}
}

func assertOK(t *testing.T, rec *httptest.ResponseRecorder, status int) map[string]any {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (body %s)", status, rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body)
	}
	return body
}

func createTestUser(t *testing.T, users *memory.UserRepository, email, plaintext string, role user.Role) *user.User {
	t.Helper()

	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u, err := users.Create(context.Background(), user.CreateUserInput{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createTestPodcast(t *testing.T, podcasts *memory.PodcastRepository, title, category string) *podcast.Podcast {
	t.Helper()

	p, err := podcasts.Create(context.Background(), podcast.CreatePodcastInput{
		Title:    title,
		Category: category,
	})
	if err != nil {
		t.Fatalf("create podcast: %v", err)
	}
	return p
}
