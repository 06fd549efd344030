package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		UserSvc       *user.Service
		AssignmentSvc *assignment.Service
		NewsSvc       *news.Service
		AttendanceSvc *attendance.Service

		Redis *redis.Client // optional; enables rate limiting
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
		auth *auth
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
		auth: newAuth(opts.Conf),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(requestIDMiddleware())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(metricsMiddleware())
	if s.opts.Redis != nil {
		s.app.Use(rateLimitMiddleware(s.opts.Redis, conf.RateLimitPerMin))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)
	s.app.GET("/metrics", metricsHandler())

	v1 := s.app.Group("/v1")
	jwt := s.auth.middleware()

	registerUserAPI(v1, jwt, s.auth, s.opts.UserSvc)
	registerAssignmentAPI(v1, jwt, s.auth, s.opts.Conf, s.opts.AssignmentSvc, s.opts.UserSvc)
	registerNewsAPI(v1, jwt, s.auth, s.opts.Conf, s.opts.NewsSvc, s.opts.UserSvc)
	registerAttendanceAPI(v1, jwt, s.auth, s.opts.AttendanceSvc, s.opts.UserSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Conf.Server.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the SHC Portal API!")
}
