// Package controller
package controller

import (
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	mid "github.com/half-nothing/flyleague-events/internal/http_server/middleware"
	"github.com/labstack/echo/v4"
	"net/http"
)

type UserControllerInterface interface {
	LoginPage(ctx echo.Context) error
	LoginSubmit(ctx echo.Context) error
	RegisterPage(ctx echo.Context) error
	RegisterSubmit(ctx echo.Context) error
	Logout(ctx echo.Context) error
}

type UserController struct {
	logger        log.LoggerInterface
	siteName      string
	sessionConfig *c.SessionConfig
	service       UserServiceInterface
	sessionStore  SessionStoreInterface
}

func NewUserController(
	logger log.LoggerInterface,
	config *c.ServerConfig,
	service UserServiceInterface,
	sessionStore SessionStoreInterface,
) *UserController {
	return &UserController{
		logger:        logger,
		siteName:      config.General.SiteName,
		sessionConfig: config.HttpServer.Session,
		service:       service,
		sessionStore:  sessionStore,
	}
}

func (controller *UserController) LoginPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "login.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
	})
}

func (controller *UserController) LoginSubmit(ctx echo.Context) error {
	data := &RequestUserLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.LoginSubmit bind error: %v", err)
		return ctx.Render(http.StatusOK, "login.html", echo.Map{
			"SiteName": controller.siteName,
			"Error":    ErrLackParam.Description,
		})
	}

	result := controller.service.UserLogin(data)
	if result.Failed() {
		// 登录失败重新渲染表单并携带提示语
		return ctx.Render(http.StatusOK, "login.html", echo.Map{
			"SiteName": controller.siteName,
			"Error":    result.Status.Description,
		})
	}
	return controller.attachAndRedirect(ctx, result.Data)
}

func (controller *UserController) RegisterPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "register.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
	})
}

func (controller *UserController) RegisterSubmit(ctx echo.Context) error {
	data := &RequestUserRegister{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.RegisterSubmit bind error: %v", err)
		return ctx.String(ErrLackParam.HttpCode.Code(), ErrLackParam.Description)
	}

	result := controller.service.UserRegister(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return controller.attachAndRedirect(ctx, result.Data)
}

func (controller *UserController) Logout(ctx echo.Context) error {
	if token := mid.CurrentToken(ctx); token != "" {
		if err := controller.sessionStore.Destroy(token); err != nil {
			controller.logger.WarnF("UserController.Logout destroy session error: %v", err)
		}
	}
	mid.ClearSessionCookie(ctx, controller.sessionConfig)
	return ctx.Redirect(http.StatusFound, "/")
}

// attachAndRedirect 登录与注册共用的会话下发流程
func (controller *UserController) attachAndRedirect(ctx echo.Context, data *ResponseUserAuth) error {
	token, err := controller.sessionStore.Attach(data.User)
	if err != nil {
		controller.logger.ErrorF("UserController session attach error: %v", err)
		return ctx.String(ErrDatabaseFail.HttpCode.Code(), ErrDatabaseFail.Description)
	}
	mid.SetSessionCookie(ctx, controller.sessionConfig, token)

	if data.User.IsAdmin {
		return ctx.Redirect(http.StatusFound, "/admin")
	}
	return ctx.Redirect(http.StatusFound, "/")
}
