// Package core is the application layer between the HTTP API and the
// services. The Facade is the only entry point the API uses.
package core

import (
	"context"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

const tokenTypeBearer = "bearer"

// Services bundles the business services the facade is assembled from.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Exercises service.ExerciseService
	Plans     service.PlanService
	Tracking  service.TrackingService
	Media     service.MediaService // Optional
}

// Facade aggregates the interactors behind a single call surface.
type Facade struct {
	users     *UserInteractor
	exercises *ExerciseInteractor
	plans     *PlanInteractor
	tracking  *TrackingInteractor
}

// NewFacade wires the interactors. A nil dispatcher selects the default
// strength/cardio chain; a nil recorder disables metrics.
func NewFacade(svc Services, dispatcher *service.UsageDispatcher, rec metrics.Recorder) *Facade {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Facade{
		users:     NewUserInteractor(svc.Auth, svc.Users, rec),
		exercises: NewExerciseInteractor(svc.Exercises, svc.Media),
		plans:     NewPlanInteractor(svc.Plans, svc.Exercises, dispatcher, rec),
		tracking:  NewTrackingInteractor(svc.Tracking, svc.Exercises),
	}
}

// --- Users ---

func (f *Facade) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	user, err := f.users.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (f *Facade) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	token, user, err := f.users.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token, TokenType: tokenTypeBearer, User: mapUser(user)}, nil
}

// --- Exercises ---

func (f *Facade) CreateExercise(ctx context.Context, req CreateExerciseRequest) (*ExerciseResponse, error) {
	exercise, err := f.exercises.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := mapExercise(exercise)
	return &resp, nil
}

func (f *Facade) GetExercise(ctx context.Context, exerciseID string) (*ExerciseResponse, error) {
	exercise, err := f.exercises.GetOne(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	resp := mapExercise(exercise)
	return &resp, nil
}

func (f *Facade) ListExercises(ctx context.Context) (*ExerciseListResponse, error) {
	exercises, err := f.exercises.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ExerciseListResponse{Exercises: mapExercises(exercises)}, nil
}

func (f *Facade) RequestExerciseMediaUpload(ctx context.Context, exerciseID string, req MediaUploadRequest) (*service.UploadTicket, error) {
	return f.exercises.RequestMediaUpload(ctx, exerciseID, req)
}

func (f *Facade) ExerciseMediaURL(ctx context.Context, exerciseID string) (*MediaURLResponse, error) {
	url, err := f.exercises.MediaURL(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	return &MediaURLResponse{URL: url}, nil
}

// --- Plans ---

func (f *Facade) CreatePlan(ctx context.Context, ownerID string, req CreatePlanRequest) (*PlanResponse, error) {
	return planResponse(f.plans.Create(ctx, ownerID, req))
}

func (f *Facade) GetPlan(ctx context.Context, ownerID, planID string) (*PlanResponse, error) {
	return planResponse(f.plans.GetOne(ctx, ownerID, planID))
}

func (f *Facade) ListPlans(ctx context.Context, ownerID string) (*PlanListResponse, error) {
	plans, err := f.plans.GetAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := &PlanListResponse{Plans: make([]PlanResponse, len(plans))}
	for i := range plans {
		resp.Plans[i] = mapPlan(&plans[i])
	}
	return resp, nil
}

func (f *Facade) DeletePlan(ctx context.Context, ownerID, planID string) error {
	return f.plans.Delete(ctx, ownerID, planID)
}

func (f *Facade) AddExerciseToPlan(ctx context.Context, ownerID, planID string, req AddExerciseRequest) (*PlanResponse, error) {
	return planResponse(f.plans.AddExercise(ctx, ownerID, planID, req.ExerciseID, req.Type, req.payload()))
}

func (f *Facade) AddStrengthExercise(ctx context.Context, ownerID, planID string, req StrengthExerciseRequest) (*PlanResponse, error) {
	return f.AddExerciseToPlan(ctx, ownerID, planID, AddExerciseRequest{
		ExerciseID: req.ExerciseID,
		Type:       string(domain.UsageStrength),
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
	})
}

func (f *Facade) AddCardioExercise(ctx context.Context, ownerID, planID string, req CardioExerciseRequest) (*PlanResponse, error) {
	return f.AddExerciseToPlan(ctx, ownerID, planID, AddExerciseRequest{
		ExerciseID: req.ExerciseID,
		Type:       string(domain.UsageCardio),
		Duration:   req.Duration,
		Distance:   req.Distance,
		Calories:   req.Calories,
	})
}

func (f *Facade) RemoveExerciseFromPlan(ctx context.Context, ownerID, planID, exerciseID string) error {
	return f.plans.RemoveExercise(ctx, ownerID, planID, exerciseID)
}

func planResponse(plan *domain.WorkoutPlan, err error) (*PlanResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := mapPlan(plan)
	return &resp, nil
}

// --- Tracking ---

func (f *Facade) RecordWeight(ctx context.Context, userID string, req RecordWeightRequest) (*WeightEntryResponse, error) {
	entry, err := f.tracking.RecordWeight(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	resp := mapWeight(entry)
	return &resp, nil
}

func (f *Facade) WeightHistory(ctx context.Context, userID string) (*WeightHistoryResponse, error) {
	entries, err := f.tracking.WeightHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &WeightHistoryResponse{Entries: make([]WeightEntryResponse, len(entries))}
	for i := range entries {
		resp.Entries[i] = mapWeight(&entries[i])
	}
	return resp, nil
}

func (f *Facade) LatestWeight(ctx context.Context, userID string) (*WeightEntryResponse, error) {
	entry, err := f.tracking.LatestWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapWeight(entry)
	return &resp, nil
}

func (f *Facade) DeleteWeight(ctx context.Context, userID, entryID string) error {
	return f.tracking.DeleteWeight(ctx, userID, entryID)
}

func (f *Facade) CreateGoal(ctx context.Context, userID string, req CreateGoalRequest) (*GoalResponse, error) {
	return goalResponse(f.tracking.CreateGoal(ctx, userID, req))
}

func (f *Facade) ListGoals(ctx context.Context, userID string) (*GoalListResponse, error) {
	goals, err := f.tracking.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &GoalListResponse{Goals: mapGoals(goals)}, nil
}

func (f *Facade) ActiveGoals(ctx context.Context, userID string) (*GoalListResponse, error) {
	goals, err := f.tracking.ActiveGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &GoalListResponse{Goals: mapGoals(goals)}, nil
}

func (f *Facade) Achievements(ctx context.Context, userID string) (*AchievementsResponse, error) {
	goals, err := f.tracking.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AchievementsResponse{Achievements: mapGoals(goals)}, nil
}

func (f *Facade) UpdateGoal(ctx context.Context, userID, goalID string, req UpdateGoalRequest) (*GoalResponse, error) {
	return goalResponse(f.tracking.UpdateGoal(ctx, userID, goalID, req))
}

func (f *Facade) SetGoalStatus(ctx context.Context, userID, goalID string, req GoalStatusRequest) (*GoalResponse, error) {
	return goalResponse(f.tracking.SetGoalStatus(ctx, userID, goalID, req))
}

func (f *Facade) UpdateGoalProgress(ctx context.Context, userID, goalID string, req GoalProgressRequest) (*GoalResponse, error) {
	return goalResponse(f.tracking.UpdateGoalProgress(ctx, userID, goalID, req))
}

func (f *Facade) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return f.tracking.DeleteGoal(ctx, userID, goalID)
}

func (f *Facade) Summary(ctx context.Context, userID string) (*service.Summary, error) {
	return f.tracking.Summary(ctx, userID)
}

func goalResponse(goal *domain.FitnessGoal, err error) (*GoalResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := mapGoal(goal)
	return &resp, nil
}
