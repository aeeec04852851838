// Package service
package service

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
)

type UserServiceInterface interface {
	UserRegister(req *RequestUserRegister) *ActionResult[ResponseUserAuth]
	UserLogin(req *RequestUserLogin) *ActionResult[ResponseUserAuth]
}

type RequestUserRegister struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type RequestUserLogin struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type ResponseUserAuth struct {
	User *operation.User
}
