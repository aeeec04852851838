// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/half-nothing/flyleague-events/internal/http_server/controller"
	mid "github.com/half-nothing/flyleague-events/internal/http_server/middleware"
	impl "github.com/half-nothing/flyleague-events/internal/http_server/service"
	"github.com/half-nothing/flyleague-events/internal/http_server/session"
	"github.com/half-nothing/flyleague-events/internal/http_server/view"
	. "github.com/half-nothing/flyleague-events/internal/interfaces"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.FatalF("Http server renderer error: %v", err)
		return
	}
	e.Renderer = renderer

	sessionStore := session.NewMemoryStore(logger, httpConfig.Session)
	sessionStore.StartCleanup(httpConfig.Session.CleanupDuration)
	applicationContent.Cleaner().Add(session.NewSessionStoreShutdownCallback(sessionStore))

	e.Use(mid.SessionMiddleware(sessionStore, httpConfig.Session))

	impl.InitValidator(httpConfig.Limits)

	userOperation := applicationContent.Operations().UserOperation()
	eventOperation := applicationContent.Operations().EventOperation()
	participantOperation := applicationContent.Operations().ParticipantOperation()

	userService := impl.NewUserService(logger, userOperation)
	eventService := impl.NewEventService(logger, eventOperation, participantOperation)
	adminService := impl.NewAdminService(logger, userOperation, eventOperation, participantOperation)

	siteName := config.Server.General.SiteName
	userController := controller.NewUserController(logger, config.Server, userService, sessionStore)
	eventController := controller.NewEventController(logger, siteName, eventService)
	adminController := controller.NewAdminController(logger, siteName, adminService)

	e.GET("/", eventController.IndexPage)
	e.GET("/event/:id", eventController.DetailPage)
	e.POST("/event/:id/participate", eventController.Participate, mid.RequireUser)

	e.GET("/login", userController.LoginPage)
	e.POST("/login", userController.LoginSubmit)
	e.GET("/register", userController.RegisterPage)
	e.POST("/register", userController.RegisterSubmit)
	e.GET("/logout", userController.Logout)

	adminGroup := e.Group("/admin", mid.RequireAdmin)
	adminGroup.GET("", adminController.DashboardPage)
	adminGroup.GET("/add-event", adminController.AddEventPage)
	adminGroup.POST("/add-event", adminController.AddEventSubmit)
	adminGroup.GET("/users", adminController.UsersPage)
	adminGroup.POST("/users/toggle-admin/:id", adminController.ToggleAdmin)
	adminGroup.POST("/users/delete/:id", adminController.DeleteUser)
	adminGroup.POST("/events/delete/:id", adminController.DeleteEvent)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)

	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
