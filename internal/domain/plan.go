package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanTemplate is a shared, reusable weekly schedule definition in the
// catalog. Templates are created once (seeded at startup when the catalog
// is empty) and never mutated afterwards; users train against their own
// copies, never against the template itself.
type PlanTemplate struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Description         string             `bson:"description" json:"description"`
	DetailedDescription string             `bson:"detailedDescription,omitempty" json:"detailedDescription,omitempty"`
	DaysPerWeek         int                `bson:"daysPerWeek" json:"daysPerWeek"`
	Difficulty          string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	// Followers is a display-only counter carried from the seed data; it is
	// not derived from real adoption counts.
	Followers int           `bson:"followers" json:"followers"`
	Schedule  []ScheduleDay `bson:"schedule" json:"schedule"`
}
