// Package operation
package operation

import (
	"errors"
)

var (
	// ErrAlreadyParticipated 用户已报名该活动
	ErrAlreadyParticipated = errors.New("user has already participated in this event")
)

// ParticipantOperationInterface 活动报名操作接口定义
type ParticipantOperationInterface interface {
	// NewParticipant 创建新报名记录(只是创建, 没有写入数据库)
	NewParticipant(event *Event, user *User, name string, qq string, flightNumber string, aircraftType string) (participant *Participant)
	// GetParticipantsByEvent 获取活动的全部报名记录, 当err为nil时返回值participants有效
	GetParticipantsByEvent(eventId uint) (participants []*Participant, err error)
	// HasParticipated 检查用户是否已报名活动, 当err为nil时返回值participated有效
	HasParticipated(eventId uint, userId uint) (participated bool, err error)
	// AddParticipant 保存报名记录, 写入前在事务内检查(eventId, userId)唯一性, 冲突返回 ErrAlreadyParticipated
	AddParticipant(participant *Participant) (err error)
}
