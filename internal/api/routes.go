package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Dependencies carries everything the HTTP layer needs.
type Dependencies struct {
	Facade      *core.Facade
	AuthService service.AuthService
	Logger      logrus.FieldLogger
	Metrics     metrics.Recorder    // Optional
	Gatherer    prometheus.Gatherer // Optional; exposes /metrics when set
	RateLimiter *RateLimiter        // Optional
}

// NewRouter builds a gin engine with recovery, request logging and metrics,
// then registers every route.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(deps.Logger), MetricsMiddleware(deps.Metrics))
	SetupRoutes(router, deps)
	return router
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authHandler := NewAuthHandler(deps.Facade, deps.Logger)
	exerciseHandler := NewExerciseHandler(deps.Facade, deps.Logger)
	planHandler := NewPlanHandler(deps.Facade, deps.Logger)
	trackingHandler := NewTrackingHandler(deps.Facade, deps.Logger)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	limit := func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		limit = deps.RateLimiter.Middleware()
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth", limit)
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(deps.AuthService), limit)
	{
		protected.GET("/me", authHandler.Me)

		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.POST("/:id/media", exerciseHandler.RequestMediaUpload)
			exerciseGroup.GET("/:id/media", exerciseHandler.GetMediaURL)
		}

		// --- Workout Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
			planGroup.POST("/:id/exercises", planHandler.AddExercise)
			planGroup.POST("/:id/strength_exercise", planHandler.AddStrengthExercise)
			planGroup.POST("/:id/cardio_exercise", planHandler.AddCardioExercise)
			planGroup.DELETE("/:id/exercises/:exerciseId", planHandler.RemoveExercise)
		}

		// --- Tracking Routes ---
		trackingGroup := protected.Group("/tracking")
		{
			trackingGroup.GET("/weight", trackingHandler.WeightHistory)
			trackingGroup.POST("/weight", trackingHandler.RecordWeight)
			trackingGroup.GET("/weight/latest", trackingHandler.LatestWeight)
			trackingGroup.DELETE("/weight/:id", trackingHandler.DeleteWeight)

			trackingGroup.GET("/goals", trackingHandler.ListGoals)
			trackingGroup.POST("/goals", trackingHandler.CreateGoal)
			trackingGroup.GET("/goals/active", trackingHandler.ActiveGoals)
			trackingGroup.PUT("/goals/:id", trackingHandler.UpdateGoal)
			trackingGroup.PATCH("/goals/:id", trackingHandler.SetGoalStatus)
			trackingGroup.DELETE("/goals/:id", trackingHandler.DeleteGoal)
			trackingGroup.PUT("/goals/:id/progress", trackingHandler.UpdateGoalProgress)

			trackingGroup.GET("/achievements", trackingHandler.Achievements)
			trackingGroup.GET("/summary", trackingHandler.Summary)
		}
	}
}
