// Package service
package service

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"time"
)

// SessionRecord 服务端会话记录, 保存登录时的用户快照.
// 快照在会话存续期内不回源刷新, 权限变更需重新登录后生效.
type SessionRecord struct {
	User      *operation.User
	ExpiresAt time.Time
}

// SessionStoreInterface 会话存储接口定义, 令牌经由Cookie下发
type SessionStoreInterface interface {
	// Get 通过令牌获取会话记录, ok为false表示令牌无效或已过期
	Get(token string) (record *SessionRecord, ok bool)
	// Attach 为用户快照创建新会话, 当err为nil时返回值token有效
	Attach(user *operation.User) (token string, err error)
	// Destroy 销毁令牌对应的会话
	Destroy(token string) (err error)
}
