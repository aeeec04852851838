package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type EventOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewEventOperation(db *gorm.DB, queryTimeout time.Duration) *EventOperation {
	return &EventOperation{db: db, queryTimeout: queryTimeout}
}

func (eventOperation *EventOperation) NewEvent(title string, startTime time.Time, departure string, arrival string, aircraftTypes []string, details string) (event *Event) {
	if aircraftTypes == nil {
		aircraftTypes = make([]string, 0)
	}
	return &Event{
		Title:         title,
		StartTime:     startTime,
		Departure:     departure,
		Arrival:       arrival,
		AircraftTypes: aircraftTypes,
		Details:       details,
	}
}

func (eventOperation *EventOperation) GetEvents() (events []*Event, err error) {
	events = make([]*Event, 0)
	ctx, cancel := context.WithTimeout(context.Background(), eventOperation.queryTimeout)
	defer cancel()
	err = eventOperation.db.WithContext(ctx).Order("id").Find(&events).Error
	return
}

func (eventOperation *EventOperation) GetEventById(id uint) (event *Event, err error) {
	event = &Event{}
	ctx, cancel := context.WithTimeout(context.Background(), eventOperation.queryTimeout)
	defer cancel()
	err = eventOperation.db.WithContext(ctx).Where("id = ?", id).First(event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrEventNotFound
	}
	return
}

func (eventOperation *EventOperation) AddEvent(event *Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), eventOperation.queryTimeout)
	defer cancel()
	return eventOperation.db.WithContext(ctx).Create(event).Error
}

func (eventOperation *EventOperation) DeleteEvent(event *Event) error {
	return eventOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), eventOperation.queryTimeout)
		defer cancel()

		// 先级联删除报名记录, 再删除活动本身
		if err := tx.WithContext(ctx).Where("event_id = ?", event.ID).Delete(&Participant{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Delete(event).Error
	})
}
