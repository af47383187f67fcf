package mongo

import (
	"testing"

	"fitbuddy/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// SetDayCompletion pins the expected current value with an array filter on
// "d.completed", and $eq against false only matches documents that carry
// the field. These tests pin the serialized shape so the filter can always
// address a freshly created day.

func TestScheduleDayMarshalsCompletedWhenFalse(t *testing.T) {
	days := domain.CloneSchedule([]domain.ScheduleDay{
		{Day: "Monday", Focus: "Push", Exercises: []domain.ExerciseSpec{
			{Name: "Bench Press", Sets: "4", Reps: "8-10"},
		}},
	})

	raw, err := bson.Marshal(days[0])
	require.NoError(t, err)
	doc := bson.Raw(raw)

	completed, err := doc.LookupErr("completed")
	require.NoError(t, err, "a fresh day must store an explicit completed flag")
	assert.False(t, completed.Boolean())

	dayID, err := doc.LookupErr("dayId")
	require.NoError(t, err)
	assert.Equal(t, days[0].DayID, dayID.StringValue())
}

func TestUserWorkoutMarshalsFilterableSchedule(t *testing.T) {
	workout := domain.UserWorkout{
		UserID:      "507f1f77bcf86cd799439011",
		PlanName:    "Push Pull Legs (PPL)",
		DaysPerWeek: 2,
		Schedule: domain.CloneSchedule([]domain.ScheduleDay{
			{Day: "Monday", Focus: "Push"},
			{Day: "Tuesday", Focus: "Pull"},
		}),
	}

	raw, err := bson.Marshal(workout)
	require.NoError(t, err)
	doc := bson.Raw(raw)

	schedule, err := doc.LookupErr("schedule")
	require.NoError(t, err)
	elems, err := schedule.Array().Values()
	require.NoError(t, err)
	require.Len(t, elems, 2)

	for _, elem := range elems {
		day := elem.Document()
		completed, err := day.LookupErr("completed")
		require.NoError(t, err)
		assert.False(t, completed.Boolean())
	}
}
