// Package operation
package operation

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false;not null" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type Event struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"size:128;not null" json:"title"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	Departure     string    `gorm:"size:64;not null" json:"departure"`
	Arrival       string    `gorm:"size:64;not null" json:"arrival"`
	AircraftTypes []string  `gorm:"serializer:json" json:"aircraft_types"`
	Details       string    `gorm:"type:text" json:"details"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}

type Participant struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	EventId         uint      `gorm:"uniqueIndex:eventParticipant;not null" json:"event_id"`
	UserId          uint      `gorm:"uniqueIndex:eventParticipant;not null" json:"user_id"`
	Name            string    `gorm:"size:64;not null" json:"name"`
	QQ              string    `gorm:"size:16;not null" json:"qq"`
	FlightNumber    string    `gorm:"size:16;not null" json:"flight_number"`
	AircraftType    string    `gorm:"size:16;not null" json:"aircraft_type"`
	ParticipateTime time.Time `gorm:"not null" json:"participate_time"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
