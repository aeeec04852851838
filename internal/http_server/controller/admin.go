// Package controller
package controller

import (
	mid "github.com/half-nothing/flyleague-events/internal/http_server/middleware"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

type AdminControllerInterface interface {
	DashboardPage(ctx echo.Context) error
	AddEventPage(ctx echo.Context) error
	AddEventSubmit(ctx echo.Context) error
	UsersPage(ctx echo.Context) error
	ToggleAdmin(ctx echo.Context) error
	DeleteUser(ctx echo.Context) error
	DeleteEvent(ctx echo.Context) error
}

type AdminController struct {
	logger   log.LoggerInterface
	siteName string
	service  AdminServiceInterface
}

func NewAdminController(logger log.LoggerInterface, siteName string, service AdminServiceInterface) *AdminController {
	return &AdminController{
		logger:   logger,
		siteName: siteName,
		service:  service,
	}
}

func (controller *AdminController) DashboardPage(ctx echo.Context) error {
	result := controller.service.GetDashboard()
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Render(http.StatusOK, "admin.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
		"Items":    result.Data.Items,
	})
}

func (controller *AdminController) AddEventPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "add-event.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
	})
}

func (controller *AdminController) AddEventSubmit(ctx echo.Context) error {
	data := &RequestAddEvent{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.AddEventSubmit bind error: %v", err)
		return ctx.String(ErrLackParam.HttpCode.Code(), ErrLackParam.Description)
	}

	result := controller.service.AddEvent(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Redirect(http.StatusFound, "/admin")
}

func (controller *AdminController) UsersPage(ctx echo.Context) error {
	result := controller.service.GetUsers()
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Render(http.StatusOK, "admin-users.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
		"Users":    result.Data.Items,
	})
}

func (controller *AdminController) ToggleAdmin(ctx echo.Context) error {
	data := &RequestToggleAdmin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.ToggleAdmin bind error: %v", err)
		return ctx.String(ErrUserNotFound.HttpCode.Code(), ErrUserNotFound.Description)
	}
	data.Operator = mid.CurrentUser(ctx)

	result := controller.service.ToggleAdmin(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Redirect(http.StatusFound, "/admin/users")
}

func (controller *AdminController) DeleteUser(ctx echo.Context) error {
	data := &RequestDeleteUser{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.DeleteUser bind error: %v", err)
		return ctx.String(ErrUserNotFound.HttpCode.Code(), ErrUserNotFound.Description)
	}
	data.Operator = mid.CurrentUser(ctx)

	result := controller.service.DeleteUser(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Redirect(http.StatusFound, "/admin/users")
}

func (controller *AdminController) DeleteEvent(ctx echo.Context) error {
	data := &RequestDeleteEvent{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.DeleteEvent bind error: %v", err)
		return ctx.String(ErrEventNotFound.HttpCode.Code(), ErrEventNotFound.Description)
	}

	result := controller.service.DeleteEvent(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Redirect(http.StatusFound, "/admin")
}
