// Package service
package service

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	Found               HttpCode = 302
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

// ActionResult 页面操作结果: 失败时携带状态, 成功时携带页面数据
type ActionResult[T any] struct {
	HttpCode int
	Status   *ApiStatus
	Data     *T
}

func NewActionResult[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ActionResult[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ActionResult[T]{
		HttpCode: httpCode.Code(),
		Status:   codeStatus,
		Data:     data,
	}
}

func (result *ActionResult[T]) Failed() bool {
	return result.HttpCode >= BadRequest.Code()
}

// RespondText 以纯文本形式返回结果描述, 用于表单流程的失败分支
func (result *ActionResult[T]) RespondText(ctx echo.Context) error {
	return ctx.String(result.HttpCode, result.Status.Description)
}

var (
	ErrLackParam     = ApiStatus{"PARAM_LACK_ERROR", "请填写完整信息", BadRequest}
	ErrDatabaseFail  = ApiStatus{"DATABASE_ERROR", "服务器内部错误", ServerInternalError}
	ErrUserNotFound  = ApiStatus{"USER_NOT_FOUND", "用户不存在", NotFound}
	ErrEventNotFound = ApiStatus{"EVENT_NOT_FOUND", "活动不存在", NotFound}
	ErrNoPermission  = ApiStatus{"NO_PERMISSION", "无权限访问，请使用管理员账号登录后重试。", PermissionDenied}
)

// CallDBFuncAndCheckError 调用数据库操作函数并把底层错误映射为页面状态
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ActionResult[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewActionResult[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEventNotFound):
		return nil, NewActionResult[T](&ErrEventNotFound, Unsatisfied, nil)
	case err != nil:
		return nil, NewActionResult[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}
