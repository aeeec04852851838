// Package operation
package operation

import (
	"errors"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user does not exist")
	// ErrUsernameTaken 用户名已被占用
	ErrUsernameTaken = errors.New("username has been used")
	// ErrLastAdmin 系统需要至少保留一个管理员
	ErrLastAdmin = errors.New("at least one administrator required")
)

// UserOperationInterface 用户操作接口定义
type UserOperationInterface interface {
	// GetUserByUid 通过主键ID获取用户, 当err为nil时返回值user有效
	GetUserByUid(uid uint) (user *User, err error)
	// GetUserByUsername 通过用户名获取用户(大小写敏感精确匹配), 当err为nil时返回值user有效
	GetUserByUsername(username string) (user *User, err error)
	// GetUsers 获取全部用户, 当err为nil时返回值users有效
	GetUsers() (users []*User, err error)
	// NewUser 创建一个新用户(只是创建, 没有写入数据库)
	NewUser(username string, password string) (user *User)
	// AddUser 创建一个新用户(写入数据库), 写入前在事务内检查用户名唯一性, 冲突返回 ErrUsernameTaken
	AddUser(user *User) (err error)
	// VerifyUserPassword 验证用户密码是否正确, pass为true表示验证通过
	VerifyUserPassword(user *User, password string) (pass bool)
	// CountAdmins 统计管理员数目, 当err为nil时返回值total有效
	CountAdmins() (total int64, err error)
	// ToggleUserAdmin 翻转用户管理员标记, 目标为最后一个管理员时返回 ErrLastAdmin
	ToggleUserAdmin(user *User) (err error)
	// DeleteUser 删除用户并级联删除其报名记录, 目标为最后一个管理员时返回 ErrLastAdmin
	DeleteUser(user *User) (err error)
}
