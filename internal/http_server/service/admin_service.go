// Package service
package service

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"time"
)

// startTimeLayout 表单datetime-local控件提交的时间格式
const startTimeLayout = "2006-01-02T15:04"

type AdminService struct {
	logger               log.LoggerInterface
	userOperation        operation.UserOperationInterface
	eventOperation       operation.EventOperationInterface
	participantOperation operation.ParticipantOperationInterface
}

func NewAdminService(
	logger log.LoggerInterface,
	userOperation operation.UserOperationInterface,
	eventOperation operation.EventOperationInterface,
	participantOperation operation.ParticipantOperationInterface,
) *AdminService {
	return &AdminService{
		logger:               logger,
		userOperation:        userOperation,
		eventOperation:       eventOperation,
		participantOperation: participantOperation,
	}
}

var (
	SuccessGetDashboard = ApiStatus{StatusName: "GET_DASHBOARD_SUCCESS", Description: "获取后台面板成功", HttpCode: Ok}
)

func (adminService *AdminService) GetDashboard() *ActionResult[ResponseDashboard] {
	events, err := adminService.eventOperation.GetEvents()
	if err != nil {
		adminService.logger.ErrorF("AdminService.GetDashboard database error: %v", err)
		return NewActionResult[ResponseDashboard](&ErrDatabaseFail, Unsatisfied, nil)
	}

	items := make([]*EventSummary, 0, len(events))
	for _, event := range events {
		participants, err := adminService.participantOperation.GetParticipantsByEvent(event.ID)
		if err != nil {
			adminService.logger.ErrorF("AdminService.GetDashboard database error: %v", err)
			return NewActionResult[ResponseDashboard](&ErrDatabaseFail, Unsatisfied, nil)
		}
		items = append(items, &EventSummary{
			Event:            event,
			Participants:     participants,
			ParticipantCount: len(participants),
		})
	}
	return NewActionResult(&SuccessGetDashboard, Unsatisfied, &ResponseDashboard{Items: items})
}

var (
	ErrEventLackParam = ApiStatus{StatusName: "EVENT_PARAM_LACK", Description: "请填写必要的活动信息", HttpCode: BadRequest}
	SuccessAddEvent   = ApiStatus{StatusName: "ADD_EVENT_SUCCESS", Description: "活动创建成功", HttpCode: Ok}
)

func (adminService *AdminService) AddEvent(req *RequestAddEvent) *ActionResult[ResponseAddEvent] {
	if req.Title == "" || req.StartTime == "" || req.Departure == "" || req.Arrival == "" {
		return NewActionResult[ResponseAddEvent](&ErrEventLackParam, Unsatisfied, nil)
	}
	startTime, err := time.ParseInLocation(startTimeLayout, req.StartTime, time.Local)
	if err != nil {
		return NewActionResult[ResponseAddEvent](&ErrEventLackParam, Unsatisfied, nil)
	}

	event := adminService.eventOperation.NewEvent(req.Title, startTime, req.Departure, req.Arrival,
		normalizeAircraftTypes(req.AircraftTypes), req.Details)
	if err := adminService.eventOperation.AddEvent(event); err != nil {
		adminService.logger.ErrorF("AdminService.AddEvent database error: %v", err)
		return NewActionResult[ResponseAddEvent](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessAddEvent, Unsatisfied, &ResponseAddEvent{Event: event})
}

// normalizeAircraftTypes 过滤空白项, 表单提交零个, 一个或多个值都归一为切片
func normalizeAircraftTypes(values []string) []string {
	types := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			types = append(types, value)
		}
	}
	return types
}

var (
	SuccessGetUsers = ApiStatus{StatusName: "GET_USERS_SUCCESS", Description: "获取用户列表成功", HttpCode: Ok}
)

func (adminService *AdminService) GetUsers() *ActionResult[ResponseUserList] {
	users, err := adminService.userOperation.GetUsers()
	if err != nil {
		adminService.logger.ErrorF("AdminService.GetUsers database error: %v", err)
		return NewActionResult[ResponseUserList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessGetUsers, Unsatisfied, &ResponseUserList{Items: users})
}

var (
	ErrLastAdmin       = ApiStatus{StatusName: "LAST_ADMIN_REQUIRED", Description: "系统至少需要保留一个管理员用户", HttpCode: BadRequest}
	SuccessToggleAdmin = ApiStatus{StatusName: "TOGGLE_ADMIN_SUCCESS", Description: "用户权限修改成功", HttpCode: Ok}
)

// ToggleAdmin 已登录会话持有旧快照, 权限变更在目标用户重新登录后生效
func (adminService *AdminService) ToggleAdmin(req *RequestToggleAdmin) *ActionResult[ResponseToggleAdmin] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseToggleAdmin](func() (*operation.User, error) {
		return adminService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}

	if err := adminService.userOperation.ToggleUserAdmin(user); errors.Is(err, operation.ErrLastAdmin) {
		return NewActionResult[ResponseToggleAdmin](&ErrLastAdmin, Unsatisfied, nil)
	} else if err != nil {
		adminService.logger.ErrorF("AdminService.ToggleAdmin database error: %v", err)
		return NewActionResult[ResponseToggleAdmin](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessToggleAdmin, Unsatisfied, &ResponseToggleAdmin{User: user})
}

var (
	ErrSelfDelete     = ApiStatus{StatusName: "SELF_DELETE_FORBIDDEN", Description: "不允许删除当前登录的用户", HttpCode: BadRequest}
	SuccessDeleteUser = ApiStatus{StatusName: "DELETE_USER_SUCCESS", Description: "用户删除成功", HttpCode: Ok}
)

// DeleteUser 检查顺序: 用户存在 -> 不是当前登录用户 -> 不是最后一个管理员
func (adminService *AdminService) DeleteUser(req *RequestDeleteUser) *ActionResult[ResponseDeleteUser] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseDeleteUser](func() (*operation.User, error) {
		return adminService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}

	if user.ID == req.Operator.ID {
		return NewActionResult[ResponseDeleteUser](&ErrSelfDelete, Unsatisfied, nil)
	}

	if err := adminService.userOperation.DeleteUser(user); errors.Is(err, operation.ErrLastAdmin) {
		return NewActionResult[ResponseDeleteUser](&ErrLastAdmin, Unsatisfied, nil)
	} else if err != nil {
		adminService.logger.ErrorF("AdminService.DeleteUser database error: %v", err)
		return NewActionResult[ResponseDeleteUser](&ErrDatabaseFail, Unsatisfied, nil)
	}
	data := ResponseDeleteUser(true)
	return NewActionResult(&SuccessDeleteUser, Unsatisfied, &data)
}

var (
	SuccessDeleteEvent = ApiStatus{StatusName: "DELETE_EVENT_SUCCESS", Description: "活动删除成功", HttpCode: Ok}
)

func (adminService *AdminService) DeleteEvent(req *RequestDeleteEvent) *ActionResult[ResponseDeleteEvent] {
	event, res := CallDBFuncAndCheckError[operation.Event, ResponseDeleteEvent](func() (*operation.Event, error) {
		return adminService.eventOperation.GetEventById(req.EventId)
	})
	if res != nil {
		return res
	}

	if err := adminService.eventOperation.DeleteEvent(event); err != nil {
		adminService.logger.ErrorF("AdminService.DeleteEvent database error: %v", err)
		return NewActionResult[ResponseDeleteEvent](&ErrDatabaseFail, Unsatisfied, nil)
	}
	data := ResponseDeleteEvent(true)
	return NewActionResult(&SuccessDeleteEvent, Unsatisfied, &data)
}
