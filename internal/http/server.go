package http

import (
	"context"
	stdhttp "net/http"

	"podcast-service/internal/auth"
	"podcast-service/internal/config"
	"podcast-service/internal/domain/user"
	"podcast-service/internal/http/handler"
	"podcast-service/internal/http/middleware"
	"podcast-service/internal/repository"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config        *config.Config
	Users         repository.UserRepository
	Podcasts      repository.PodcastRepository
	Episodes      repository.EpisodeRepository
	Reviews       repository.ReviewRepository
	Subscriptions repository.SubscriptionRepository
	Tokens        *auth.TokenService
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

// route binds one operation to its role requirement. The table below is the
// single place where access metadata is declared; it is read once at startup
// and consulted per call by the dispatch wrapper.
type route struct {
	method  string
	path    string
	op      string
	access  auth.Requirement
	handler auth.Handler
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	// Identity resolution runs on every request, before dispatch, whether or
	// not the operation requires authentication.
	e.Use(auth.ResolveIdentity(deps.Tokens, deps.Users, deps.Config.Auth.TokenHeader))

	authHandler := handler.NewAuthHandler(deps.Users, deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Users)
	podcastHandler := handler.NewPodcastHandler(deps.Podcasts)
	episodeHandler := handler.NewEpisodeHandler(deps.Podcasts, deps.Episodes)
	subscriptionHandler := handler.NewSubscriptionHandler(deps.Podcasts, deps.Reviews, deps.Subscriptions)

	routes := []route{
		{stdhttp.MethodPost, "/auth/signup", "createUser", auth.Public(), authHandler.Signup},
		{stdhttp.MethodPost, "/auth/login", "login", auth.Public(), authHandler.Login},

		{stdhttp.MethodGet, "/me", "me", auth.Authenticated(), userHandler.Me},
		{stdhttp.MethodPut, "/me", "editProfile", auth.Authenticated(), userHandler.EditProfile},
		{stdhttp.MethodGet, "/users/:id", "seeProfile", auth.Public(), userHandler.SeeProfile},

		{stdhttp.MethodGet, "/podcasts", "getAllPodcasts", auth.Public(), podcastHandler.List},
		{stdhttp.MethodGet, "/podcasts/search", "searchPodcasts", auth.Public(), podcastHandler.Search},
		{stdhttp.MethodPost, "/podcasts", "createPodcast", auth.Roles(user.RoleHost), podcastHandler.Create},
		{stdhttp.MethodGet, "/podcasts/:id", "getPodcast", auth.Public(), podcastHandler.Get},
		{stdhttp.MethodPut, "/podcasts/:id", "updatePodcast", auth.Roles(user.RoleHost), podcastHandler.Update},
		{stdhttp.MethodDelete, "/podcasts/:id", "deletePodcast", auth.Roles(user.RoleHost), podcastHandler.Delete},

		{stdhttp.MethodGet, "/podcasts/:id/episodes", "getEpisodes", auth.Public(), episodeHandler.List},
		{stdhttp.MethodPost, "/podcasts/:id/episodes", "createEpisode", auth.Roles(user.RoleHost), episodeHandler.Create},
		{stdhttp.MethodGet, "/podcasts/:id/episodes/:episode_id", "getEpisode", auth.Public(), episodeHandler.Get},
		{stdhttp.MethodPut, "/podcasts/:id/episodes/:episode_id", "updateEpisode", auth.Roles(user.RoleHost), episodeHandler.Update},
		{stdhttp.MethodDelete, "/podcasts/:id/episodes/:episode_id", "deleteEpisode", auth.Roles(user.RoleHost), episodeHandler.Delete},

		{stdhttp.MethodPost, "/podcasts/:id/reviews", "reviewPodcast", auth.Roles(user.RoleListener), subscriptionHandler.Review},
		{stdhttp.MethodPost, "/podcasts/:id/subscriptions", "subscribePodcast", auth.Roles(user.RoleListener), subscriptionHandler.Subscribe},
		{stdhttp.MethodGet, "/subscriptions", "getSubscriptions", auth.Roles(user.RoleListener), subscriptionHandler.ListSubscriptions},
	}

	policy := auth.NewPolicy()
	for _, r := range routes {
		policy.Register(r.op, r.access)
		e.Add(r.method, r.path, policy.Dispatch(r.op, r.handler))
	}

	e.GET("/health", healthCheck)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying mux for tests.
func (s *Server) Handler() stdhttp.Handler {
	return s.echo
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
