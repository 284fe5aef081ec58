package core

import (
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

// --- Auth ---

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse follows the OAuth2 bearer token shape.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func mapUser(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// --- Exercises ---

type CreateExerciseRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         int    `json:"exerciseCode" binding:"required"`
	TargetMuscle string `json:"targetMuscle" binding:"required"`
	Description  string `json:"description"`
	Instruction  string `json:"instruction"`
}

type ExerciseResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Code         int           `json:"exerciseCode"`
	TargetMuscle domain.Muscle `json:"targetMuscle"`
	Description  string        `json:"description"`
	Instruction  string        `json:"instruction"`
	HasMedia     bool          `json:"hasMedia"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type ExerciseListResponse struct {
	Exercises []ExerciseResponse `json:"exercises"`
}

func mapExercise(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:           e.ID,
		Name:         e.Name,
		Code:         e.Code,
		TargetMuscle: e.TargetMuscle,
		Description:  e.Description,
		Instruction:  e.Instruction,
		HasMedia:     e.HasMedia(),
		CreatedAt:    e.CreatedAt,
	}
}

func mapExercises(exercises []domain.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		out[i] = mapExercise(&exercises[i])
	}
	return out
}

type MediaUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type MediaURLResponse struct {
	URL string `json:"url"`
}

// --- Plans ---

type CreatePlanRequest struct {
	Name            string `json:"name"`
	GoalDescription string `json:"goalDescription"`
}

type PlanResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	GoalDescription string                 `json:"goalDescription"`
	Exercises       []domain.ExerciseUsage `json:"exercises"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"workoutPlans"`
}

func mapPlan(p *domain.WorkoutPlan) PlanResponse {
	exercises := p.Exercises
	if exercises == nil {
		exercises = []domain.ExerciseUsage{}
	}
	return PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		GoalDescription: p.GoalDescription,
		Exercises:       exercises,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// AddExerciseRequest is the generic add-exercise body. Type selects the
// variant; only that variant's fields are read.
type AddExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	Duration   *float64 `json:"duration"`
	Distance   *float64 `json:"distance"`
	Calories   *float64 `json:"calories"`
}

func (r AddExerciseRequest) payload() service.UsagePayload {
	return service.UsagePayload{
		Sets:     r.Sets,
		Reps:     r.Reps,
		Weight:   r.Weight,
		Duration: r.Duration,
		Distance: r.Distance,
		Calories: r.Calories,
	}
}

type StrengthExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
}

type CardioExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Duration   *float64 `json:"duration"`
	Distance   *float64 `json:"distance"`
	Calories   *float64 `json:"calories"`
}

// --- Tracking ---

type RecordWeightRequest struct {
	Value      float64    `json:"value" binding:"required"`
	RecordedAt *time.Time `json:"recordedAt"`
}

type WeightEntryResponse struct {
	ID         string    `json:"id"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

type WeightHistoryResponse struct {
	Entries []WeightEntryResponse `json:"entries"`
}

func mapWeight(e *domain.WeightEntry) WeightEntryResponse {
	return WeightEntryResponse{ID: e.ID, Value: e.Value, RecordedAt: e.RecordedAt}
}

type CreateGoalRequest struct {
	Name        string     `json:"name" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	TargetValue float64    `json:"targetValue" binding:"required"`
	ExerciseID  *string    `json:"exerciseId"`
	DueDate     *time.Time `json:"dueDate"`
	Description string     `json:"description"`
}

type UpdateGoalRequest struct {
	Name        *string    `json:"name"`
	TargetValue *float64   `json:"targetValue"`
	DueDate     *time.Time `json:"dueDate"`
	Description *string    `json:"description"`
}

// Goal status values accepted by GoalStatusRequest.
const (
	GoalStatusCompleted = "completed"
	GoalStatusActive    = "active"
)

type GoalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type GoalProgressRequest struct {
	CurrentValue *float64 `json:"currentValue" binding:"required"`
}

type GoalResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	IsCompleted  bool       `json:"isCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ExerciseID   *string    `json:"exerciseId,omitempty"`
	Description  string     `json:"description"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

type AchievementsResponse struct {
	Achievements []GoalResponse `json:"achievements"`
}

func mapGoal(g *domain.FitnessGoal) GoalResponse {
	return GoalResponse{
		ID:           g.ID,
		Name:         g.Name,
		Type:         g.Type,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		IsCompleted:  g.IsCompleted,
		CreatedAt:    g.CreatedAt,
		DueDate:      g.DueDate,
		ExerciseID:   g.ExerciseID,
		Description:  g.Description,
	}
}

func mapGoals(goals []domain.FitnessGoal) []GoalResponse {
	out := make([]GoalResponse, len(goals))
	for i := range goals {
		out[i] = mapGoal(&goals[i])
	}
	return out
}
