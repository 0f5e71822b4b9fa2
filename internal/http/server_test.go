package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"podcast-service/internal/auth"
	"podcast-service/internal/config"
	"podcast-service/internal/http"
	"podcast-service/internal/repository/memory"

	"github.com/labstack/echo/v4"
)

const testJWTSecret = "test-secret-test-secret-test-secret"

func newTestServer(t *testing.T) *http.Server {
	t.Helper()

	podcasts := memory.NewPodcastRepository()
	return http.NewServer(&http.ServerDependencies{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:            "0",
				ReadTimeout:     5 * time.Second,
				WriteTimeout:    5 * time.Second,
				ShutdownTimeout: 5 * time.Second,
			},
			Auth: config.AuthConfig{
				JWTSecret:   testJWTSecret,
				TokenHeader: config.DefaultTokenHeader,
			},
		},
		Users:         memory.NewUserRepository(),
		Podcasts:      podcasts,
		Episodes:      memory.NewEpisodeRepository(),
		Reviews:       memory.NewReviewRepository(),
		Subscriptions: memory.NewSubscriptionRepository(podcasts),
		Tokens:        auth.NewTokenService(testJWTSecret),
	})
}

func do(t *testing.T, srv *http.Server, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(config.DefaultTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, decoded
}

func signupAndLogin(t *testing.T, srv *http.Server, email, pw, role string) string {
	t.Helper()

	rec, _ := do(t, srv, stdhttp.MethodPost, "/auth/signup", "",
		`{"email":"`+email+`","password":"`+pw+`","role":"`+role+`"}`)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("signup %s: status %d (%s)", email, rec.Code, rec.Body.String())
	}

	rec, body := do(t, srv, stdhttp.MethodPost, "/auth/login", "",
		`{"email":"`+email+`","password":"`+pw+`"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("login %s: status %d (%s)", email, rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response %v", email, body)
	}
	return token
}

func TestSignupLoginAndMe(t *testing.T) {
	srv := newTestServer(t)

	token := signupAndLogin(t, srv, "a@test.com", "pw", "Host")

	// A wrong password is reported distinguishably from a missing account.
	rec, body := do(t, srv, stdhttp.MethodPost, "/auth/login", "",
		`{"email":"a@test.com","password":"bad"}`)
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["ok"] != false || body["error"] != "Wrong password!" {
		t.Fatalf("unexpected login failure body: %v", body)
	}

	rec, body = do(t, srv, stdhttp.MethodGet, "/me", token, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("me: status %d (%s)", rec.Code, rec.Body.String())
	}
	profile, _ := body["user"].(map[string]any)
	if profile["email"] != "a@test.com" || profile["role"] != "Host" {
		t.Fatalf("unexpected profile: %v", profile)
	}

	// Without a token the same operation yields the generic Forbidden.
	rec, body = do(t, srv, stdhttp.MethodGet, "/me", "", "")
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["ok"] != false || body["error"] != "Forbidden" {
		t.Fatalf("unexpected deny body: %v", body)
	}
}

func TestRoleGates(t *testing.T) {
	srv := newTestServer(t)

	hostToken := signupAndLogin(t, srv, "host@test.com", "pw", "Host")
	listenerToken := signupAndLogin(t, srv, "listener@test.com", "pw", "Listener")

	// Creation is host-only.
	rec, _ := do(t, srv, stdhttp.MethodPost, "/podcasts", listenerToken,
		`{"title":"Go Time","category":"tech"}`)
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("listener creating a podcast: expected 403, got %d", rec.Code)
	}

	rec, body := do(t, srv, stdhttp.MethodPost, "/podcasts", hostToken,
		`{"title":"Go Time","category":"tech"}`)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("host creating a podcast: status %d (%s)", rec.Code, rec.Body.String())
	}
	if body["id"] != float64(1) {
		t.Fatalf("expected podcast id 1, got %v", body["id"])
	}

	// Reviewing is listener-only, and the deny carries no role detail.
	rec, body = do(t, srv, stdhttp.MethodPost, "/podcasts/1/reviews", hostToken,
		`{"content":"self-promotion"}`)
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("host reviewing: expected 403, got %d", rec.Code)
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("unexpected deny body: %v", body)
	}

	rec, _ = do(t, srv, stdhttp.MethodPost, "/podcasts/1/reviews", listenerToken,
		`{"content":"great show"}`)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("listener reviewing: status %d (%s)", rec.Code, rec.Body.String())
	}

	// Reads stay open to everyone, token or not.
	rec, _ = do(t, srv, stdhttp.MethodGet, "/podcasts", "", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("anonymous list: status %d", rec.Code)
	}
}

func TestSubscriptionFlow(t *testing.T) {
	srv := newTestServer(t)

	hostToken := signupAndLogin(t, srv, "host@test.com", "pw", "Host")
	listenerToken := signupAndLogin(t, srv, "listener@test.com", "pw", "Listener")

	rec, _ := do(t, srv, stdhttp.MethodPost, "/podcasts", hostToken,
		`{"title":"Go Time","category":"tech"}`)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create podcast: status %d", rec.Code)
	}

	rec, _ = do(t, srv, stdhttp.MethodPost, "/podcasts/1/subscriptions", listenerToken, "")
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("subscribe: status %d (%s)", rec.Code, rec.Body.String())
	}

	rec, body := do(t, srv, stdhttp.MethodGet, "/subscriptions", listenerToken, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("list subscriptions: status %d (%s)", rec.Code, rec.Body.String())
	}
	subs, _ := body["subscriptions"].([]any)
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscription, got %d", len(subs))
	}
	first, _ := subs[0].(map[string]any)
	p, _ := first["podcast"].(map[string]any)
	if p["title"] != "Go Time" {
		t.Fatalf("expected embedded podcast, got %v", first)
	}
}

func TestInvalidTokenIsAnonymousNotError(t *testing.T) {
	srv := newTestServer(t)

	// Public reads still succeed with a garbage token attached.
	rec, _ := do(t, srv, stdhttp.MethodGet, "/podcasts", "not-a-token", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("public read with bad token: status %d", rec.Code)
	}

	// Restricted operations deny it exactly like a missing token.
	rec, body := do(t, srv, stdhttp.MethodGet, "/me", "not-a-token", "")
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("unexpected deny body: %v", body)
	}
}

func TestStrayErrorsKeepEnvelope(t *testing.T) {
	srv := newTestServer(t)

	// A router miss never goes through a handler; the error handler still
	// owes the caller the ok/error shape.
	rec, body := do(t, srv, stdhttp.MethodGet, "/no-such-route", "", "")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["ok"] != false || body["error"] != "Not Found" {
		t.Fatalf("unexpected miss body: %v", body)
	}

	// Same for a wrong method on a registered path.
	rec, body = do(t, srv, stdhttp.MethodDelete, "/auth/login", "", "")
	if rec.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if body["ok"] != false || body["error"] != "Method Not Allowed" {
		t.Fatalf("unexpected wrong-method body: %v", body)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec, body := do(t, srv, stdhttp.MethodGet, "/health", "", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("health: status %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
}
