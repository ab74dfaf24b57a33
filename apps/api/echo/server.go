package echoapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/analytics"
	"github.com/trezcool/masomo/core/branch"
	"github.com/trezcool/masomo/core/course"
	"github.com/trezcool/masomo/core/finance"
	"github.com/trezcool/masomo/core/library"
	"github.com/trezcool/masomo/core/payroll"
	"github.com/trezcool/masomo/core/student"
	"github.com/trezcool/masomo/core/teacher"
	"github.com/trezcool/masomo/core/transport"
	"github.com/trezcool/masomo/core/user"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		AnalyticsSvc *analytics.Service
		BranchSvc    *branch.Service
		CourseSvc    *course.Service
		FinanceSvc   *finance.Service
		LibrarySvc   *library.Service
		PayrollSvc   *payroll.Service
		StudentSvc   *student.Service
		TeacherSvc   *teacher.Service
		TransportSvc *transport.Service
		UserSvc      *user.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		jwt      middleware.JWTConfig
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		jwt:      newJWTConfig(deps.Conf),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	if !deps.Conf.TestMode {
		signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(s.jwt)

	registerAuthAPI(v1, jwt, s)
	registerAnalyticsAPI(v1.Group("/analytics", jwt), s)
	registerBranchAPI(v1.Group("/branches", jwt), s)
	registerCourseAPI(v1.Group("/courses", jwt), s)
	registerFinanceAPI(v1.Group("/finance", jwt), s)
	registerLibraryAPI(v1.Group("/library", jwt), s)
	registerPayrollAPI(v1.Group("/payroll", jwt), s)
	registerStudentAPI(v1.Group("/students", jwt), s)
	registerTeacherAPI(v1.Group("/teachers", jwt), s)
	registerTransportAPI(v1.Group("/transport", jwt), s)
	registerSettingsAPI(v1.Group("/settings", jwt, adminMiddleware()), s)
}

// Start blocks until the server stops. Listening errors are reported on Errors.
func (s *Server) Start() {
	s.deps.Logger.Info(fmt.Sprintf("API listening on %s", s.deps.Conf.Server.Address))
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Masomo Admin API!")
}
