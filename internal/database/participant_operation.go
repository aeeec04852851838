package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type ParticipantOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewParticipantOperation(db *gorm.DB, queryTimeout time.Duration) *ParticipantOperation {
	return &ParticipantOperation{db: db, queryTimeout: queryTimeout}
}

func (participantOperation *ParticipantOperation) NewParticipant(event *Event, user *User, name string, qq string, flightNumber string, aircraftType string) (participant *Participant) {
	return &Participant{
		EventId:         event.ID,
		UserId:          user.ID,
		Name:            name,
		QQ:              qq,
		FlightNumber:    flightNumber,
		AircraftType:    aircraftType,
		ParticipateTime: time.Now(),
	}
}

func (participantOperation *ParticipantOperation) GetParticipantsByEvent(eventId uint) (participants []*Participant, err error) {
	participants = make([]*Participant, 0)
	ctx, cancel := context.WithTimeout(context.Background(), participantOperation.queryTimeout)
	defer cancel()
	err = participantOperation.db.WithContext(ctx).Where("event_id = ?", eventId).Order("id").Find(&participants).Error
	return
}

func (participantOperation *ParticipantOperation) HasParticipated(eventId uint, userId uint) (participated bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), participantOperation.queryTimeout)
	defer cancel()
	var count int64
	err = participantOperation.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ? and user_id = ?", eventId, userId).
		Count(&count).Error
	return count > 0, err
}

func (participantOperation *ParticipantOperation) AddParticipant(participant *Participant) error {
	return participantOperation.db.Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), participantOperation.queryTimeout)
		defer cancel()

		var count int64
		if err := tx.WithContext(ctx).Model(&Participant{}).
			Where("event_id = ? and user_id = ?", participant.EventId, participant.UserId).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyParticipated
		}

		err := tx.WithContext(ctx).Create(participant).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyParticipated
		}
		return err
	})
}
