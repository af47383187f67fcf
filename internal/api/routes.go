package api

import (
	"net/http"

	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	workoutService service.WorkoutService,
	communityService service.CommunityService,
	profileService service.ProfileService,
) {

	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(catalogService)
	workoutHandler := NewWorkoutHandler(workoutService)
	communityHandler := NewCommunityHandler(communityService)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The plan catalog is browsable without an account.
		apiGroup.GET("/plans", planHandler.ListPlans)
		apiGroup.GET("/plans/:planId", planHandler.GetPlan)
	}

	protected := apiGroup.Group("")
	protected.Use(authMiddleware)
	{
		// --- User Workout Routes ---
		// The :id segment is the owning user's id on GET and the workout
		// instance id on DELETE/PATCH; gin requires one wildcard name per
		// position.
		protected.GET("/user-workouts/:id", workoutHandler.GetUserWorkouts)
		protected.POST("/user-workouts", workoutHandler.CreateWorkout)
		protected.DELETE("/user-workouts/:id", workoutHandler.DeleteWorkout)
		protected.PATCH("/user-workouts/:id/complete", workoutHandler.ToggleComplete)

		// --- Community Routes ---
		protected.GET("/community/:planId", communityHandler.GetCommunity)

		// --- User Profile Routes ---
		protected.GET("/users/:userId", profileHandler.GetProfile)
		protected.POST("/profile/avatar/upload-url", profileHandler.RequestAvatarUploadURL)
		protected.POST("/profile/avatar/confirm", profileHandler.ConfirmAvatar)
	}
}
