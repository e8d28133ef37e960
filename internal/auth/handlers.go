package auth

import (
	"net/http"
	"time"

	"rally-backend/internal/database/models"
	apperrors "rally-backend/internal/errors"
	"rally-backend/internal/logger"
	"rally-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService      *AuthService
	discoveryService *service.DiscoveryService
	retryAttempts    int
	retryDelay       time.Duration
	log              *logger.Logger
}

// NewAuthHandler creates a new auth handler. retryAttempts and retryDelay
// control how hard registration tries to run association discovery before
// giving up; the account is created either way.
func NewAuthHandler(authService *AuthService, discoveryService *service.DiscoveryService, retryAttempts int, retryDelay time.Duration) *AuthHandler {
	if retryAttempts < 1 {
		retryAttempts = 1
	}
	return &AuthHandler{
		authService:      authService,
		discoveryService: discoveryService,
		retryAttempts:    retryAttempts,
		retryDelay:       retryDelay,
		log:              logger.New().WithField("component", "auth"),
	}
}

// RegisterBody represents the expected request body for POST /api/auth/register
type RegisterBody struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

// LoginBody represents the expected request body for POST /api/auth/login
type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	AccessToken string                   `json:"access_token"`
	TokenType   string                   `json:"token_type" example:"Bearer"`
	User        *models.User             `json:"user"`
	Discovery   *service.DiscoveryResult `json:"discovery,omitempty"`
}

// Register handles POST /api/auth/register
// @Summary Register a new user account
// @Description Create an account and immediately run association discovery to
// @Description link the new user to their player directory entries
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterBody true "Registration data"
// @Success 201 {object} AuthResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(body.Email, body.Password, body.FirstName, body.LastName)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrUserExists.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		}
		return
	}

	discovery := h.runDiscoveryWithRetry(user)

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user,
		Discovery:   discovery,
	})
}

// Login handles POST /api/auth/login
// @Summary Authenticate a user
// @Description Verify credentials and return a bearer token. Discovery is
// @Description re-run on every login to pick up newly imported players.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginBody true "Login credentials"
// @Success 200 {object} AuthResponse "Authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(body.Email, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	// best effort: login must succeed even when discovery cannot run
	discovery, err := h.discoveryService.DiscoverMissingAssociations(user.ID, "")
	if err != nil {
		h.log.WithField("user_id", user.ID).Warnf("login discovery failed: %v", err)
		discovery = nil
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user,
		Discovery:   discovery,
	})
}

// runDiscoveryWithRetry retries full-run failures during registration, when a
// missed discovery would leave a brand-new account with no associations at all.
// Partial failures inside a run are already handled by the service and are not
// retried here.
func (h *AuthHandler) runDiscoveryWithRetry(user *models.User) *service.DiscoveryResult {
	var lastErr error
	for attempt := 1; attempt <= h.retryAttempts; attempt++ {
		result, err := h.discoveryService.DiscoverMissingAssociations(user.ID, user.Email)
		if err == nil {
			return result
		}
		lastErr = err
		if attempt < h.retryAttempts {
			time.Sleep(h.retryDelay)
		}
	}
	h.log.WithField("user_id", user.ID).Warnf("registration discovery failed after %d attempts: %v", h.retryAttempts, lastErr)
	return nil
}
