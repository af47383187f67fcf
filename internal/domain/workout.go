package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserWorkout is a user-owned workout instance: a personal copy of a
// schedule, either adopted from a PlanTemplate or authored from scratch.
// Its schedule diverges from the template over time as days are completed.
//
// UserID and PlanID are stored as hex strings rather than ObjectIDs,
// matching what the clients send on adoption; a reference that fails to
// parse is treated as "no match" downstream, never as a fault.
type UserWorkout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	PlanID      string             `bson:"planId,omitempty" json:"planId,omitempty"` // Set when adopted from a template, absent for custom plans
	PlanName    string             `bson:"planName" json:"planName"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DaysPerWeek int                `bson:"daysPerWeek" json:"daysPerWeek"`
	Schedule    []ScheduleDay      `bson:"schedule" json:"schedule"`
	IsCustom    bool               `bson:"isCustom" json:"isCustom"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
}
