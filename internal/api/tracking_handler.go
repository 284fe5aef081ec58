package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/sirupsen/logrus"
)

// TrackingHandler serves weight history, goals and the progress summary.
type TrackingHandler struct {
	facade *core.Facade
	log    logrus.FieldLogger
}

func NewTrackingHandler(facade *core.Facade, log logrus.FieldLogger) *TrackingHandler {
	return &TrackingHandler{facade: facade, log: log}
}

// respond writes resp with code, or the mapped error.
func (h *TrackingHandler) respond(c *gin.Context, code int, resp any, err error) {
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(code, resp)
}

// --- Weight ---

// RecordWeight godoc
// @Summary Record a body-weight entry
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body core.RecordWeightRequest true "Weight and optional timestamp"
// @Success 201 {object} core.WeightEntryResponse
// @Failure 400 {object} gin.H "Weight must be positive"
// @Router /tracking/weight [post]
func (h *TrackingHandler) RecordWeight(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.RecordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.facade.RecordWeight(c.Request.Context(), userID, req)
	h.respond(c, http.StatusCreated, resp, err)
}

// WeightHistory godoc
// @Summary List weight entries, newest first
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.WeightHistoryResponse
// @Router /tracking/weight [get]
func (h *TrackingHandler) WeightHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.WeightHistory(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}

// LatestWeight godoc
// @Summary Get the most recent weight entry
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.WeightEntryResponse
// @Failure 404 {object} gin.H "No entries recorded"
// @Router /tracking/weight/latest [get]
func (h *TrackingHandler) LatestWeight(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.LatestWeight(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}

// DeleteWeight godoc
// @Summary Delete a weight entry
// @Tags Tracking
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} gin.H "Entry not found"
// @Router /tracking/weight/{id} [delete]
func (h *TrackingHandler) DeleteWeight(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteWeight(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Goals ---

// CreateGoal godoc
// @Summary Create a fitness goal
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body core.CreateGoalRequest true "Goal details"
// @Success 201 {object} core.GoalResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /tracking/goals [post]
func (h *TrackingHandler) CreateGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.facade.CreateGoal(c.Request.Context(), userID, req)
	h.respond(c, http.StatusCreated, resp, err)
}

// ListGoals godoc
// @Summary List all of the user's goals
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.GoalListResponse
// @Router /tracking/goals [get]
func (h *TrackingHandler) ListGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.ListGoals(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}

// ActiveGoals godoc
// @Summary List goals that are not yet completed
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.GoalListResponse
// @Router /tracking/goals/active [get]
func (h *TrackingHandler) ActiveGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.ActiveGoals(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}

// Achievements godoc
// @Summary List completed goals
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.AchievementsResponse
// @Router /tracking/achievements [get]
func (h *TrackingHandler) Achievements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.Achievements(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}

// UpdateGoal godoc
// @Summary Update a goal
// @Description Partial update; omitted fields are kept.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param goal body core.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} core.GoalResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Goal not found"
// @Router /tracking/goals/{id} [put]
func (h *TrackingHandler) UpdateGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.facade.UpdateGoal(c.Request.Context(), userID, c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

// SetGoalStatus godoc
// @Summary Complete or reopen a goal
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param status body core.GoalStatusRequest true "completed or active"
// @Success 200 {object} core.GoalResponse
// @Failure 400 {object} gin.H "Unknown status"
// @Failure 404 {object} gin.H "Goal not found"
// @Router /tracking/goals/{id} [patch]
func (h *TrackingHandler) SetGoalStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.GoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.facade.SetGoalStatus(c.Request.Context(), userID, c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

// UpdateGoalProgress godoc
// @Summary Report progress toward a goal
// @Description Reaching the target completes the goal.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param progress body core.GoalProgressRequest true "Current value"
// @Success 200 {object} core.GoalResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Goal not found"
// @Router /tracking/goals/{id}/progress [put]
func (h *TrackingHandler) UpdateGoalProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req core.GoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.facade.UpdateGoalProgress(c.Request.Context(), userID, c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags Tracking
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} gin.H "Goal not found"
// @Router /tracking/goals/{id} [delete]
func (h *TrackingHandler) DeleteGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary Summarize weight and goals
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Router /tracking/summary [get]
func (h *TrackingHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.facade.Summary(c.Request.Context(), userID)
	h.respond(c, http.StatusOK, resp, err)
}
