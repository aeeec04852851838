// Package operation
package operation

type DatabaseOperations struct {
	userOperation        UserOperationInterface
	eventOperation       EventOperationInterface
	participantOperation ParticipantOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	eventOperation EventOperationInterface,
	participantOperation ParticipantOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:        userOperation,
		eventOperation:       eventOperation,
		participantOperation: participantOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}

func (db *DatabaseOperations) EventOperation() EventOperationInterface {
	return db.eventOperation
}

func (db *DatabaseOperations) ParticipantOperation() ParticipantOperationInterface {
	return db.participantOperation
}
