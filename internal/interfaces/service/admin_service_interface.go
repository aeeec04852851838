// Package service
package service

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
)

type AdminServiceInterface interface {
	GetDashboard() *ActionResult[ResponseDashboard]
	AddEvent(req *RequestAddEvent) *ActionResult[ResponseAddEvent]
	GetUsers() *ActionResult[ResponseUserList]
	ToggleAdmin(req *RequestToggleAdmin) *ActionResult[ResponseToggleAdmin]
	DeleteUser(req *RequestDeleteUser) *ActionResult[ResponseDeleteUser]
	DeleteEvent(req *RequestDeleteEvent) *ActionResult[ResponseDeleteEvent]
}

// EventSummary 后台面板的活动条目, 附带报名信息
type EventSummary struct {
	Event            *operation.Event
	Participants     []*operation.Participant
	ParticipantCount int
}

type ResponseDashboard struct {
	Items []*EventSummary
}

type RequestAddEvent struct {
	Title         string   `form:"title"`
	StartTime     string   `form:"startTime"`
	Departure     string   `form:"departure"`
	Arrival       string   `form:"arrival"`
	AircraftTypes []string `form:"aircraftTypes"`
	Details       string   `form:"details"`
}

type ResponseAddEvent struct {
	Event *operation.Event
}

type ResponseUserList struct {
	Items []*operation.User
}

type RequestToggleAdmin struct {
	TargetUid uint `param:"id"`
	Operator  *operation.User
}

type ResponseToggleAdmin struct {
	User *operation.User
}

type RequestDeleteUser struct {
	TargetUid uint `param:"id"`
	Operator  *operation.User
}

type ResponseDeleteUser bool

type RequestDeleteEvent struct {
	EventId uint `param:"id"`
}

type ResponseDeleteEvent bool
