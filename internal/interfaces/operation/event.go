// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrEventNotFound 活动不存在
	ErrEventNotFound = errors.New("event does not exist")
)

// EventOperationInterface 活动操作接口定义
type EventOperationInterface interface {
	// NewEvent 创建新活动(只是创建, 没有写入数据库)
	NewEvent(title string, startTime time.Time, departure string, arrival string, aircraftTypes []string, details string) (event *Event)
	// GetEvents 获取全部活动, 当err为nil时返回值events有效
	GetEvents() (events []*Event, err error)
	// GetEventById 通过活动ID获取活动, 当err为nil时返回值event有效
	GetEventById(id uint) (event *Event, err error)
	// AddEvent 保存新活动到数据库, 当err为nil时保存成功
	AddEvent(event *Event) (err error)
	// DeleteEvent 删除活动并级联删除其报名记录, 当err为nil时删除成功
	DeleteEvent(event *Event) (err error)
}
