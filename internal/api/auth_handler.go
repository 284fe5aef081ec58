package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	facade *core.Facade
	log    logrus.FieldLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(facade *core.Facade, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{facade: facade, log: log}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body core.RegisterRequest true "Registration details"
// @Success 201 {object} core.UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req core.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body core.LoginRequest true "Login credentials"
// @Success 200 {object} core.TokenResponse
// @Failure 401 {object} gin.H "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req core.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// Me godoc
// @Summary Get the authenticated identity
// @Description Returns the identity carried by the bearer token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Failure 401 {object} gin.H "Missing or invalid token"
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "username": c.GetString(ContextUsernameKey)})
}
