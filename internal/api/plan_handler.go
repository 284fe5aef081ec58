package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/sirupsen/logrus"
)

// PlanHandler serves the authenticated user's workout plans.
type PlanHandler struct {
	facade *core.Facade
	log    logrus.FieldLogger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(facade *core.Facade, log logrus.FieldLogger) *PlanHandler {
	return &PlanHandler{facade: facade, log: log}
}

// CreatePlan godoc
// @Summary Create an empty workout plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body core.CreatePlanRequest true "Plan details"
// @Success 201 {object} core.PlanResponse
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.facade.CreatePlan(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans godoc
// @Summary List the user's workout plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.PlanListResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.ListPlans(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlan godoc
// @Summary Get one of the user's plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} core.PlanResponse
// @Failure 404 {object} gin.H "Plan not found or owned by another user"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	plan, err := h.facade.GetPlan(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary Delete one of the user's plans
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} gin.H "Plan not found or owned by another user"
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.facade.DeletePlan(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExercise godoc
// @Summary Append an exercise usage to a plan
// @Description The "type" field selects strength or cardio parameters.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param usage body core.AddExerciseRequest true "Usage"
// @Success 201 {object} core.PlanResponse
// @Failure 400 {object} gin.H "Invalid parameters or unsupported type"
// @Failure 404 {object} gin.H "Plan or exercise not found"
// @Router /plans/{id}/exercises [post]
func (h *PlanHandler) AddExercise(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.facade.AddExerciseToPlan(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// AddStrengthExercise godoc
// @Summary Append a strength usage to a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param usage body core.StrengthExerciseRequest true "Sets, reps and optional weight"
// @Success 201 {object} core.PlanResponse
// @Failure 400 {object} gin.H "Invalid parameters"
// @Failure 404 {object} gin.H "Plan or exercise not found"
// @Router /plans/{id}/strength_exercise [post]
func (h *PlanHandler) AddStrengthExercise(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.StrengthExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.facade.AddStrengthExercise(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// AddCardioExercise godoc
// @Summary Append a cardio usage to a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param usage body core.CardioExerciseRequest true "Duration, distance or calories"
// @Success 201 {object} core.PlanResponse
// @Failure 400 {object} gin.H "Invalid parameters"
// @Failure 404 {object} gin.H "Plan or exercise not found"
// @Router /plans/{id}/cardio_exercise [post]
func (h *PlanHandler) AddCardioExercise(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.CardioExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.facade.AddCardioExercise(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// RemoveExercise godoc
// @Summary Remove an exercise usage from a plan
// @Description Drops the most recently added usage of the exercise.
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param exerciseId path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} gin.H "Plan, exercise or usage not found"
// @Router /plans/{id}/exercises/{exerciseId} [delete]
func (h *PlanHandler) RemoveExercise(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	err := h.facade.RemoveExerciseFromPlan(c.Request.Context(), userID, c.Param("id"), c.Param("exerciseId"))
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
