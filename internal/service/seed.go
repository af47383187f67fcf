package service

import (
	"fitbuddy/server/internal/domain"

	"github.com/google/uuid"
)

// DefaultPlans returns the built-in plan templates: the three classic
// splits FitBuddy ships with. Day IDs are minted fresh on each call; the
// catalog only ever persists them once.
func DefaultPlans() []domain.PlanTemplate {
	return []domain.PlanTemplate{
		{
			Name:                "Push Pull Legs (PPL)",
			Description:         "A 6-day split focusing on push movements, pull movements, and leg workouts.",
			DetailedDescription: "The Push Pull Legs split is one of the most effective and popular workout routines. It divides your training into three main categories: push exercises (chest, shoulders, triceps), pull exercises (back, biceps), and leg exercises. This allows for optimal muscle recovery while maintaining high training frequency.",
			DaysPerWeek:         6,
			Difficulty:          "Intermediate",
			Followers:           1247,
			Schedule: []domain.ScheduleDay{
				day("Monday", "Push (Chest, Shoulders, Triceps)",
					ex("Bench Press", "4", "8-10"),
					ex("Overhead Press", "3", "8-12"),
					ex("Incline Dumbbell Press", "3", "10-12"),
					ex("Lateral Raises", "3", "12-15"),
					ex("Tricep Dips", "3", "10-12"),
					ex("Tricep Pushdowns", "3", "12-15"),
				),
				day("Tuesday", "Pull (Back, Biceps)",
					ex("Deadlift", "4", "6-8"),
					ex("Pull-ups", "3", "8-12"),
					ex("Barbell Rows", "3", "8-10"),
					ex("Face Pulls", "3", "12-15"),
					ex("Barbell Curls", "3", "10-12"),
					ex("Hammer Curls", "3", "12-15"),
				),
				day("Wednesday", "Legs",
					ex("Squats", "4", "8-10"),
					ex("Romanian Deadlifts", "3", "10-12"),
					ex("Leg Press", "3", "12-15"),
					ex("Leg Curls", "3", "12-15"),
					ex("Calf Raises", "4", "15-20"),
					ex("Ab Wheel Rollouts", "3", "10-15"),
				),
				day("Thursday", "Push (Chest, Shoulders, Triceps)",
					ex("Incline Bench Press", "4", "8-10"),
					ex("Dumbbell Shoulder Press", "3", "10-12"),
					ex("Cable Flyes", "3", "12-15"),
					ex("Front Raises", "3", "12-15"),
					ex("Overhead Tricep Extension", "3", "10-12"),
					ex("Close Grip Bench", "3", "10-12"),
				),
				day("Friday", "Pull (Back, Biceps)",
					ex("Weighted Pull-ups", "4", "6-10"),
					ex("T-Bar Rows", "3", "8-12"),
					ex("Lat Pulldowns", "3", "10-12"),
					ex("Cable Rows", "3", "12-15"),
					ex("Preacher Curls", "3", "10-12"),
					ex("Cable Curls", "3", "12-15"),
				),
				day("Saturday", "Legs",
					ex("Front Squats", "4", "8-12"),
					ex("Bulgarian Split Squats", "3", "10-12"),
					ex("Leg Extensions", "3", "12-15"),
					ex("Hamstring Curls", "3", "12-15"),
					ex("Seated Calf Raises", "4", "15-20"),
					ex("Hanging Leg Raises", "3", "12-15"),
				),
			},
		},
		{
			Name:                "Bro Split",
			Description:         "A 5-day split targeting one major muscle group per day for maximum focus and intensity.",
			DetailedDescription: "The Bro Split is a classic bodybuilding routine that dedicates each training day to a specific muscle group. This allows you to perform high volume training for each muscle while ensuring adequate recovery time. Perfect for those who want to focus intensely on each body part.",
			DaysPerWeek:         5,
			Difficulty:          "Beginner",
			Followers:           892,
			Schedule: []domain.ScheduleDay{
				day("Monday", "Chest",
					ex("Flat Bench Press", "4", "8-10"),
					ex("Incline Dumbbell Press", "4", "10-12"),
					ex("Decline Press", "3", "10-12"),
					ex("Cable Flyes", "3", "12-15"),
					ex("Dumbbell Pullovers", "3", "12-15"),
				),
				day("Tuesday", "Back",
					ex("Deadlifts", "4", "6-8"),
					ex("Pull-ups", "4", "8-12"),
					ex("Barbell Rows", "4", "8-10"),
					ex("Lat Pulldowns", "3", "10-12"),
					ex("Seated Cable Rows", "3", "12-15"),
				),
				day("Wednesday", "Shoulders",
					ex("Military Press", "4", "8-10"),
					ex("Lateral Raises", "4", "12-15"),
					ex("Front Raises", "3", "12-15"),
					ex("Rear Delt Flyes", "3", "12-15"),
					ex("Shrugs", "3", "12-15"),
				),
				day("Thursday", "Arms (Biceps & Triceps)",
					ex("Barbell Curls", "4", "10-12"),
					ex("Hammer Curls", "3", "10-12"),
					ex("Preacher Curls", "3", "12-15"),
					ex("Close Grip Bench", "4", "8-10"),
					ex("Tricep Dips", "3", "10-12"),
					ex("Overhead Tricep Extension", "3", "12-15"),
				),
				day("Friday", "Legs",
					ex("Squats", "4", "8-10"),
					ex("Leg Press", "4", "10-12"),
					ex("Romanian Deadlifts", "3", "10-12"),
					ex("Leg Extensions", "3", "12-15"),
					ex("Leg Curls", "3", "12-15"),
					ex("Calf Raises", "4", "15-20"),
				),
			},
		},
		{
			Name:                "Upper/Lower Split",
			Description:         "A 4-day split alternating between upper body and lower body workouts.",
			DetailedDescription: "The Upper/Lower split divides your training into upper body and lower body days, allowing you to train each muscle group twice per week. This is an excellent balance between training frequency and recovery, making it ideal for strength gains and muscle growth.",
			DaysPerWeek:         4,
			Difficulty:          "Intermediate",
			Followers:           634,
			Schedule: []domain.ScheduleDay{
				day("Monday", "Upper Body",
					ex("Bench Press", "4", "6-8"),
					ex("Barbell Rows", "4", "6-8"),
					ex("Overhead Press", "3", "8-10"),
					ex("Pull-ups", "3", "8-12"),
					ex("Barbell Curls", "3", "10-12"),
					ex("Tricep Dips", "3", "10-12"),
				),
				day("Tuesday", "Lower Body",
					ex("Squats", "4", "6-8"),
					ex("Romanian Deadlifts", "3", "8-10"),
					ex("Leg Press", "3", "10-12"),
					ex("Leg Curls", "3", "12-15"),
					ex("Calf Raises", "4", "15-20"),
					ex("Planks", "3", "60sec"),
				),
				day("Thursday", "Upper Body",
					ex("Incline Bench Press", "4", "8-10"),
					ex("T-Bar Rows", "4", "8-10"),
					ex("Dumbbell Shoulder Press", "3", "10-12"),
					ex("Lat Pulldowns", "3", "10-12"),
					ex("Hammer Curls", "3", "10-12"),
					ex("Tricep Pushdowns", "3", "12-15"),
				),
				day("Friday", "Lower Body",
					ex("Deadlifts", "4", "5-6"),
					ex("Front Squats", "3", "8-10"),
					ex("Bulgarian Split Squats", "3", "10-12"),
					ex("Leg Extensions", "3", "12-15"),
					ex("Seated Calf Raises", "4", "15-20"),
					ex("Ab Wheel Rollouts", "3", "10-15"),
				),
			},
		},
	}
}

func day(name, focus string, exercises ...domain.ExerciseSpec) domain.ScheduleDay {
	return domain.ScheduleDay{
		DayID:     uuid.NewString(),
		Day:       name,
		Focus:     focus,
		Exercises: exercises,
	}
}

func ex(name, sets, reps string) domain.ExerciseSpec {
	return domain.ExerciseSpec{Name: name, Sets: sets, Reps: reps}
}
