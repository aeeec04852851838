// Package controller
package controller

import (
	"fmt"
	mid "github.com/half-nothing/flyleague-events/internal/http_server/middleware"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

type EventControllerInterface interface {
	IndexPage(ctx echo.Context) error
	DetailPage(ctx echo.Context) error
	Participate(ctx echo.Context) error
}

type EventController struct {
	logger   log.LoggerInterface
	siteName string
	service  EventServiceInterface
}

func NewEventController(logger log.LoggerInterface, siteName string, service EventServiceInterface) *EventController {
	return &EventController{
		logger:   logger,
		siteName: siteName,
		service:  service,
	}
}

func (controller *EventController) IndexPage(ctx echo.Context) error {
	result := controller.service.GetEvents()
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Render(http.StatusOK, "index.html", echo.Map{
		"SiteName": controller.siteName,
		"User":     mid.CurrentUser(ctx),
		"Events":   result.Data.Items,
	})
}

func (controller *EventController) DetailPage(ctx echo.Context) error {
	data := &RequestEventDetail{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EventController.DetailPage bind error: %v", err)
		return ctx.String(ErrEventNotFound.HttpCode.Code(), ErrEventNotFound.Description)
	}

	result := controller.service.GetEventDetail(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Render(http.StatusOK, "event-detail.html", echo.Map{
		"SiteName":         controller.siteName,
		"User":             mid.CurrentUser(ctx),
		"Event":            result.Data.Event,
		"Participants":     result.Data.Participants,
		"ParticipantCount": result.Data.ParticipantCount,
	})
}

func (controller *EventController) Participate(ctx echo.Context) error {
	data := &RequestParticipate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EventController.Participate bind error: %v", err)
		return ctx.String(ErrLackParam.HttpCode.Code(), ErrLackParam.Description)
	}
	data.User = mid.CurrentUser(ctx)

	result := controller.service.Participate(data)
	if result.Failed() {
		return result.RespondText(ctx)
	}
	return ctx.Redirect(http.StatusFound, fmt.Sprintf("/event/%d", data.EventId))
}
