// Package service
package service

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
)

type EventService struct {
	logger               log.LoggerInterface
	eventOperation       operation.EventOperationInterface
	participantOperation operation.ParticipantOperationInterface
}

func NewEventService(
	logger log.LoggerInterface,
	eventOperation operation.EventOperationInterface,
	participantOperation operation.ParticipantOperationInterface,
) *EventService {
	return &EventService{
		logger:               logger,
		eventOperation:       eventOperation,
		participantOperation: participantOperation,
	}
}

var (
	SuccessGetEvents      = ApiStatus{StatusName: "GET_EVENTS_SUCCESS", Description: "获取活动列表成功", HttpCode: Ok}
	SuccessGetEventDetail = ApiStatus{StatusName: "GET_EVENT_DETAIL_SUCCESS", Description: "获取活动详情成功", HttpCode: Ok}
)

func (eventService *EventService) GetEvents() *ActionResult[ResponseEventList] {
	events, err := eventService.eventOperation.GetEvents()
	if err != nil {
		eventService.logger.ErrorF("EventService.GetEvents database error: %v", err)
		return NewActionResult[ResponseEventList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessGetEvents, Unsatisfied, &ResponseEventList{Items: events})
}

func (eventService *EventService) GetEventDetail(req *RequestEventDetail) *ActionResult[ResponseEventDetail] {
	event, res := CallDBFuncAndCheckError[operation.Event, ResponseEventDetail](func() (*operation.Event, error) {
		return eventService.eventOperation.GetEventById(req.EventId)
	})
	if res != nil {
		return res
	}

	participants, err := eventService.participantOperation.GetParticipantsByEvent(event.ID)
	if err != nil {
		eventService.logger.ErrorF("EventService.GetEventDetail database error: %v", err)
		return NewActionResult[ResponseEventDetail](&ErrDatabaseFail, Unsatisfied, nil)
	}

	return NewActionResult(&SuccessGetEventDetail, Unsatisfied, &ResponseEventDetail{
		Event:            event,
		Participants:     participants,
		ParticipantCount: len(participants),
	})
}

var (
	ErrAlreadyParticipated  = ApiStatus{StatusName: "ALREADY_PARTICIPATED", Description: "您已经参加过该活动", HttpCode: BadRequest}
	ErrParticipateLackParam = ApiStatus{StatusName: "PARTICIPATE_PARAM_LACK", Description: "请填写完整的参加活动信息", HttpCode: BadRequest}
	SuccessParticipate      = ApiStatus{StatusName: "PARTICIPATE_SUCCESS", Description: "报名成功", HttpCode: Ok}
)

// Participate 检查顺序: 活动存在 -> 重复报名 -> 表单字段完整
func (eventService *EventService) Participate(req *RequestParticipate) *ActionResult[ResponseParticipate] {
	event, res := CallDBFuncAndCheckError[operation.Event, ResponseParticipate](func() (*operation.Event, error) {
		return eventService.eventOperation.GetEventById(req.EventId)
	})
	if res != nil {
		return res
	}

	participated, err := eventService.participantOperation.HasParticipated(event.ID, req.User.ID)
	if err != nil {
		eventService.logger.ErrorF("EventService.Participate database error: %v", err)
		return NewActionResult[ResponseParticipate](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if participated {
		return NewActionResult[ResponseParticipate](&ErrAlreadyParticipated, Unsatisfied, nil)
	}

	if req.Name == "" || req.QQ == "" || req.FlightNumber == "" || req.AircraftType == "" {
		return NewActionResult[ResponseParticipate](&ErrParticipateLackParam, Unsatisfied, nil)
	}

	participant := eventService.participantOperation.NewParticipant(event, req.User, req.Name, req.QQ, req.FlightNumber, req.AircraftType)
	if err := eventService.participantOperation.AddParticipant(participant); errors.Is(err, operation.ErrAlreadyParticipated) {
		return NewActionResult[ResponseParticipate](&ErrAlreadyParticipated, Unsatisfied, nil)
	} else if err != nil {
		eventService.logger.ErrorF("EventService.Participate database error: %v", err)
		return NewActionResult[ResponseParticipate](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessParticipate, Unsatisfied, &ResponseParticipate{Participant: participant})
}
