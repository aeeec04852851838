// Package service
package service

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
)

type EventServiceInterface interface {
	GetEvents() *ActionResult[ResponseEventList]
	GetEventDetail(req *RequestEventDetail) *ActionResult[ResponseEventDetail]
	Participate(req *RequestParticipate) *ActionResult[ResponseParticipate]
}

type ResponseEventList struct {
	Items []*operation.Event
}

type RequestEventDetail struct {
	EventId uint `param:"id"`
}

type ResponseEventDetail struct {
	Event            *operation.Event
	Participants     []*operation.Participant
	ParticipantCount int
}

type RequestParticipate struct {
	EventId      uint   `param:"id"`
	Name         string `form:"name"`
	QQ           string `form:"qq"`
	FlightNumber string `form:"flightNumber"`
	AircraftType string `form:"aircraftType"`
	User         *operation.User
}

type ResponseParticipate struct {
	Participant *operation.Participant
}
