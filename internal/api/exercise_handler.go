package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler serves the exercise catalog and its media.
type ExerciseHandler struct {
	facade *core.Facade
	log    logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(facade *core.Facade, log logrus.FieldLogger) *ExerciseHandler {
	return &ExerciseHandler{facade: facade, log: log}
}

// CreateExercise godoc
// @Summary Add an exercise to the catalog
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body core.CreateExerciseRequest true "Exercise details"
// @Success 201 {object} core.ExerciseResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Exercise code already in use"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req core.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.facade.CreateExercise(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.ExerciseListResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	resp, err := h.facade.ListExercises(c.Request.Context())
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetExercise godoc
// @Summary Get a catalog exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} core.ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.facade.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// RequestMediaUpload godoc
// @Summary Request a presigned media upload URL
// @Description Returns a presigned URL the client uploads the demo video to.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param upload body core.MediaUploadRequest true "File name and content type"
// @Success 200 {object} service.UploadTicket
// @Failure 404 {object} gin.H "Exercise not found"
// @Failure 503 {object} gin.H "Media storage not configured"
// @Router /exercises/{id}/media [post]
func (h *ExerciseHandler) RequestMediaUpload(c *gin.Context) {
	var req core.MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ticket, err := h.facade.RequestExerciseMediaUpload(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GetMediaURL godoc
// @Summary Get a presigned download URL for exercise media
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} core.MediaURLResponse
// @Failure 404 {object} gin.H "Exercise or media not found"
// @Failure 503 {object} gin.H "Media storage not configured"
// @Router /exercises/{id}/media [get]
func (h *ExerciseHandler) GetMediaURL(c *gin.Context) {
	resp, err := h.facade.ExerciseMediaURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
