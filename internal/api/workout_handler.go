package api

import (
	"fmt"
	"net/http"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

// ScheduleDayRequest is one authored day of a custom plan. Rest days
// (empty focus) are accepted here and filtered out by the service.
type ScheduleDayRequest struct {
	Day       string                `json:"day" binding:"required"`
	Focus     string                `json:"focus"`
	Exercises []ExerciseSpecRequest `json:"exercises"`
}

type ExerciseSpecRequest struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

// CreateWorkoutRequest covers both ways a workout instance comes to be:
// adopting a catalog plan (planId set) or authoring a custom plan
// (isCustom with name/description/schedule).
type CreateWorkoutRequest struct {
	PlanID      string               `json:"planId"`
	PlanName    string               `json:"planName"`
	Description string               `json:"description"`
	Schedule    []ScheduleDayRequest `json:"schedule"`
	IsCustom    bool                 `json:"isCustom"`
}

type ToggleCompleteRequest struct {
	DayIndex *int `json:"dayIndex" binding:"required"`
}

// --- Handler Methods ---

// GetUserWorkouts returns all workout instances owned by the user.
func (h *WorkoutHandler) GetUserWorkouts(c *gin.Context) {
	authUserID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	if c.Param("id") != authUserID {
		abortWithError(c, http.StatusForbidden, "Cannot view another user's workouts.")
		return
	}

	workouts, err := h.workoutService.ListForUser(c.Request.Context(), authUserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// CreateWorkout adopts a catalog plan or creates a custom one for the
// authenticated user.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	var workout *domain.UserWorkout
	if req.IsCustom {
		workout, err = h.workoutService.CreateCustom(
			c.Request.Context(), userID, req.PlanName, req.Description, mapScheduleRequest(req.Schedule))
	} else {
		workout, err = h.workoutService.Adopt(c.Request.Context(), userID, req.PlanID)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// DeleteWorkout removes a workout instance. Deleting an instance that is
// already gone still returns 204.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleComplete flips the completion flag of one schedule day and returns
// the updated workout instance.
func (h *WorkoutHandler) ToggleComplete(c *gin.Context) {
	var req ToggleCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.ToggleDayCompletion(c.Request.Context(), c.Param("id"), *req.DayIndex)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func mapScheduleRequest(days []ScheduleDayRequest) []domain.ScheduleDay {
	mapped := make([]domain.ScheduleDay, len(days))
	for i, d := range days {
		exercises := make([]domain.ExerciseSpec, len(d.Exercises))
		for j, e := range d.Exercises {
			exercises[j] = domain.ExerciseSpec{Name: e.Name, Sets: e.Sets, Reps: e.Reps}
		}
		mapped[i] = domain.ScheduleDay{
			Day:       d.Day,
			Focus:     d.Focus,
			Exercises: exercises,
		}
	}
	return mapped
}
