// Package service
package service

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
)

type UserService struct {
	logger        log.LoggerInterface
	userOperation operation.UserOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	userOperation operation.UserOperationInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		userOperation: userOperation,
	}
}

var (
	ErrRegisterLackParam  = ApiStatus{StatusName: "REGISTER_PARAM_LACK", Description: "请填写完整信息", HttpCode: BadRequest}
	ErrUsernameTaken      = ApiStatus{StatusName: "USERNAME_TAKEN", Description: "用户名已存在", HttpCode: BadRequest}
	SuccessRegister       = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "注册成功", HttpCode: Ok}
	ErrLoginLackParam     = ApiStatus{StatusName: "LOGIN_PARAM_LACK", Description: "请输入用户名和密码", HttpCode: BadRequest}
	ErrUsernameOrPassword = ApiStatus{StatusName: "WRONG_USERNAME_OR_PASSWORD", Description: "用户名或密码错误", HttpCode: BadRequest}
	SuccessLogin          = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "登陆成功", HttpCode: Ok}
)

func (userService *UserService) UserRegister(req *RequestUserRegister) *ActionResult[ResponseUserAuth] {
	if req.Username == "" || req.Password == "" {
		return NewActionResult[ResponseUserAuth](&ErrRegisterLackParam, Unsatisfied, nil)
	}
	if status := usernameValidator.CheckString(req.Username); status != nil {
		return NewActionResult[ResponseUserAuth](status, Unsatisfied, nil)
	}
	if status := passwordValidator.CheckString(req.Password); status != nil {
		return NewActionResult[ResponseUserAuth](status, Unsatisfied, nil)
	}

	user := userService.userOperation.NewUser(req.Username, req.Password)
	if err := userService.userOperation.AddUser(user); errors.Is(err, operation.ErrUsernameTaken) {
		return NewActionResult[ResponseUserAuth](&ErrUsernameTaken, Unsatisfied, nil)
	} else if err != nil {
		userService.logger.ErrorF("UserService.UserRegister database error: %v", err)
		return NewActionResult[ResponseUserAuth](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessRegister, Unsatisfied, &ResponseUserAuth{User: user})
}

func (userService *UserService) UserLogin(req *RequestUserLogin) *ActionResult[ResponseUserAuth] {
	if req.Username == "" || req.Password == "" {
		return NewActionResult[ResponseUserAuth](&ErrLoginLackParam, Unsatisfied, nil)
	}

	user, err := userService.userOperation.GetUserByUsername(req.Username)
	if errors.Is(err, operation.ErrUserNotFound) {
		return NewActionResult[ResponseUserAuth](&ErrUsernameOrPassword, Unsatisfied, nil)
	} else if err != nil {
		userService.logger.ErrorF("UserService.UserLogin database error: %v", err)
		return NewActionResult[ResponseUserAuth](&ErrDatabaseFail, Unsatisfied, nil)
	}

	if pass := userService.userOperation.VerifyUserPassword(user, req.Password); !pass {
		return NewActionResult[ResponseUserAuth](&ErrUsernameOrPassword, Unsatisfied, nil)
	}
	return NewActionResult(&SuccessLogin, Unsatisfied, &ResponseUserAuth{User: user})
}
