package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the review state of a room booking request.
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingDeclined BookingStatus = "declined"
)

// Valid reports whether s is one of the accepted booking statuses. Any valid
// status may replace any other; there is no transition graph.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingDeclined:
		return true
	}
	return false
}

// RoomBooking is a request to reserve a room for a date and time range.
type RoomBooking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Room        string             `bson:"room" json:"room"`
	Date        string             `bson:"date" json:"date"`
	StartTime   string             `bson:"start_time" json:"start_time"`
	EndTime     string             `bson:"end_time" json:"end_time"`
	Purpose     *string            `bson:"purpose" json:"purpose"`
	RequestedBy string             `bson:"requested_by" json:"requested_by"`
	Status      BookingStatus      `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// BookingFilter narrows booking listings by status.
type BookingFilter struct {
	Status string
}
