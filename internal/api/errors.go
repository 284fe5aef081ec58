package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
	"github.com/sirupsen/logrus"
)

var (
	notFoundErrors = []error{
		service.ErrExerciseNotFound,
		service.ErrPlanNotFound,
		service.ErrExerciseNotFoundInPlan,
		service.ErrUserNotFound,
		service.ErrGoalNotFound,
		service.ErrWeightEntryNotFound,
		service.ErrMediaNotFound,
	}
	conflictErrors = []error{
		service.ErrExerciseCodeConflict,
		service.ErrUsernameInUse,
	}
	badRequestErrors = []error{
		domain.ErrInvalidValue,
		domain.ErrInvalidCombination,
		domain.ErrMissingField,
		service.ErrUnsupportedExerciseType,
		service.ErrValidationFailed,
		service.ErrTrackingValidation,
		service.ErrInvalidMediaType,
		service.ErrMissingCredentials,
	}
	unauthorizedErrors = []error{
		service.ErrAuthenticationFailed,
		service.ErrInvalidToken,
	}
)

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a service error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound
	case matchesAny(err, conflictErrors):
		return http.StatusConflict
	case matchesAny(err, badRequestErrors):
		return http.StatusBadRequest
	case matchesAny(err, unauthorizedErrors):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrMediaUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError aborts with the mapped status. Internal errors are logged
// and replaced by a generic message.
func respondWithError(c *gin.Context, log logrus.FieldLogger, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		abortWithError(c, code, "An unexpected error occurred.")
		return
	}
	abortWithError(c, code, err.Error())
}
