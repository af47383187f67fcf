package domain

import (
	"github.com/google/uuid"
)

// ExerciseSpec is one exercise entry within a schedule day.
// Sets and Reps are free-form display text ("4", "8-10", "60sec");
// the system never parses or computes with them.
type ExerciseSpec struct {
	Name string `bson:"name" json:"name"`
	Sets string `bson:"sets" json:"sets"`
	Reps string `bson:"reps" json:"reps"`
}

// ScheduleDay is one weekday within a weekly schedule.
// An empty Focus marks a rest day; rest days are filtered out before an
// instance is persisted and never appear in an active schedule.
//
// DayID is a stable identifier minted when the day is created (or copied
// into an instance). Completion updates address days by DayID so that a
// toggle never depends on rewriting the whole list. The day list itself is
// a fixed schema: days are never reordered or removed after creation, so
// positional indices handed to the API stay valid for the life of the
// instance.
type ScheduleDay struct {
	DayID     string         `bson:"dayId" json:"dayId"`
	Day       string         `bson:"day" json:"day"`
	Focus     string         `bson:"focus,omitempty" json:"focus,omitempty"`
	Exercises []ExerciseSpec `bson:"exercises" json:"exercises"`
	// Completed must persist even when false: completion updates filter on
	// the stored value, and a missing field matches nothing.
	Completed bool `bson:"completed" json:"completed"`
}

// IsRestDay reports whether the day carries no training focus.
func (d ScheduleDay) IsRestDay() bool {
	return d.Focus == ""
}

// ActiveDays returns the days that carry a training focus, preserving order.
func ActiveDays(days []ScheduleDay) []ScheduleDay {
	active := make([]ScheduleDay, 0, len(days))
	for _, d := range days {
		if !d.IsRestDay() {
			active = append(active, d)
		}
	}
	return active
}

// CloneSchedule deep-copies a schedule for a new workout instance.
// Exercise order is preserved, completion state is reset, and every day
// gets a fresh DayID so instance days are addressable independently of the
// template they came from. Mutations on the copy never reach the source.
func CloneSchedule(days []ScheduleDay) []ScheduleDay {
	cloned := make([]ScheduleDay, len(days))
	for i, d := range days {
		exercises := make([]ExerciseSpec, len(d.Exercises))
		copy(exercises, d.Exercises)
		cloned[i] = ScheduleDay{
			DayID:     uuid.NewString(),
			Day:       d.Day,
			Focus:     d.Focus,
			Exercises: exercises,
			Completed: false,
		}
	}
	return cloned
}
