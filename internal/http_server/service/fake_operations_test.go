package service

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"time"
)

// fakeUserOperation 内存用户操作实现, 语义与数据库实现一致
type fakeUserOperation struct {
	nextId uint
	users  map[uint]*operation.User
	// 级联删除报名记录需要联动
	participants *fakeParticipantOperation
	failWith     error
}

func newFakeUserOperation() *fakeUserOperation {
	return &fakeUserOperation{nextId: 1, users: make(map[uint]*operation.User)}
}

func (op *fakeUserOperation) GetUserByUid(uid uint) (*operation.User, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	if user, ok := op.users[uid]; ok {
		return user, nil
	}
	return nil, operation.ErrUserNotFound
}

func (op *fakeUserOperation) GetUserByUsername(username string) (*operation.User, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	for _, user := range op.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, operation.ErrUserNotFound
}

func (op *fakeUserOperation) GetUsers() ([]*operation.User, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	users := make([]*operation.User, 0, len(op.users))
	for id := uint(1); id < op.nextId; id++ {
		if user, ok := op.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (op *fakeUserOperation) NewUser(username string, password string) *operation.User {
	return &operation.User{Username: username, Password: password}
}

func (op *fakeUserOperation) AddUser(user *operation.User) error {
	if op.failWith != nil {
		return op.failWith
	}
	for _, existing := range op.users {
		if existing.Username == user.Username {
			return operation.ErrUsernameTaken
		}
	}
	user.ID = op.nextId
	user.CreatedAt = time.Now()
	op.nextId++
	op.users[user.ID] = user
	return nil
}

func (op *fakeUserOperation) VerifyUserPassword(user *operation.User, password string) bool {
	return user.Password == password
}

func (op *fakeUserOperation) CountAdmins() (int64, error) {
	var total int64
	for _, user := range op.users {
		if user.IsAdmin {
			total++
		}
	}
	return total, nil
}

func (op *fakeUserOperation) ToggleUserAdmin(user *operation.User) error {
	if op.failWith != nil {
		return op.failWith
	}
	if user.IsAdmin {
		if total, _ := op.CountAdmins(); total <= 1 {
			return operation.ErrLastAdmin
		}
	}
	user.IsAdmin = !user.IsAdmin
	return nil
}

func (op *fakeUserOperation) DeleteUser(user *operation.User) error {
	if op.failWith != nil {
		return op.failWith
	}
	if user.IsAdmin {
		if total, _ := op.CountAdmins(); total <= 1 {
			return operation.ErrLastAdmin
		}
	}
	if op.participants != nil {
		op.participants.removeByUser(user.ID)
	}
	delete(op.users, user.ID)
	return nil
}

type fakeEventOperation struct {
	nextId uint
	events map[uint]*operation.Event
	// 级联删除报名记录需要联动
	participants *fakeParticipantOperation
	failWith     error
}

func newFakeEventOperation() *fakeEventOperation {
	return &fakeEventOperation{nextId: 1, events: make(map[uint]*operation.Event)}
}

func (op *fakeEventOperation) NewEvent(title string, startTime time.Time, departure string, arrival string, aircraftTypes []string, details string) *operation.Event {
	return &operation.Event{
		Title:         title,
		StartTime:     startTime,
		Departure:     departure,
		Arrival:       arrival,
		AircraftTypes: aircraftTypes,
		Details:       details,
	}
}

func (op *fakeEventOperation) GetEvents() ([]*operation.Event, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	events := make([]*operation.Event, 0, len(op.events))
	for id := uint(1); id < op.nextId; id++ {
		if event, ok := op.events[id]; ok {
			events = append(events, event)
		}
	}
	return events, nil
}

func (op *fakeEventOperation) GetEventById(id uint) (*operation.Event, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	if event, ok := op.events[id]; ok {
		return event, nil
	}
	return nil, operation.ErrEventNotFound
}

func (op *fakeEventOperation) AddEvent(event *operation.Event) error {
	if op.failWith != nil {
		return op.failWith
	}
	event.ID = op.nextId
	event.CreatedAt = time.Now()
	op.nextId++
	op.events[event.ID] = event
	return nil
}

func (op *fakeEventOperation) DeleteEvent(event *operation.Event) error {
	if op.failWith != nil {
		return op.failWith
	}
	if op.participants != nil {
		op.participants.removeByEvent(event.ID)
	}
	delete(op.events, event.ID)
	return nil
}

type fakeParticipantOperation struct {
	nextId       uint
	participants map[uint]*operation.Participant
	failWith     error
}

func newFakeParticipantOperation() *fakeParticipantOperation {
	return &fakeParticipantOperation{nextId: 1, participants: make(map[uint]*operation.Participant)}
}

func (op *fakeParticipantOperation) NewParticipant(event *operation.Event, user *operation.User, name string, qq string, flightNumber string, aircraftType string) *operation.Participant {
	return &operation.Participant{
		EventId:         event.ID,
		UserId:          user.ID,
		Name:            name,
		QQ:              qq,
		FlightNumber:    flightNumber,
		AircraftType:    aircraftType,
		ParticipateTime: time.Now(),
	}
}

func (op *fakeParticipantOperation) GetParticipantsByEvent(eventId uint) ([]*operation.Participant, error) {
	if op.failWith != nil {
		return nil, op.failWith
	}
	participants := make([]*operation.Participant, 0)
	for id := uint(1); id < op.nextId; id++ {
		if participant, ok := op.participants[id]; ok && participant.EventId == eventId {
			participants = append(participants, participant)
		}
	}
	return participants, nil
}

func (op *fakeParticipantOperation) HasParticipated(eventId uint, userId uint) (bool, error) {
	if op.failWith != nil {
		return false, op.failWith
	}
	for _, participant := range op.participants {
		if participant.EventId == eventId && participant.UserId == userId {
			return true, nil
		}
	}
	return false, nil
}

func (op *fakeParticipantOperation) AddParticipant(participant *operation.Participant) error {
	if op.failWith != nil {
		return op.failWith
	}
	if participated, _ := op.HasParticipated(participant.EventId, participant.UserId); participated {
		return operation.ErrAlreadyParticipated
	}
	participant.ID = op.nextId
	op.nextId++
	op.participants[participant.ID] = participant
	return nil
}

func (op *fakeParticipantOperation) removeByEvent(eventId uint) {
	for id, participant := range op.participants {
		if participant.EventId == eventId {
			delete(op.participants, id)
		}
	}
}

func (op *fakeParticipantOperation) removeByUser(userId uint) {
	for id, participant := range op.participants {
		if participant.UserId == userId {
			delete(op.participants, id)
		}
	}
}

func newFakeOperations() (*fakeUserOperation, *fakeEventOperation, *fakeParticipantOperation) {
	userOperation := newFakeUserOperation()
	eventOperation := newFakeEventOperation()
	participantOperation := newFakeParticipantOperation()
	userOperation.participants = participantOperation
	eventOperation.participants = participantOperation
	return userOperation, eventOperation, participantOperation
}
