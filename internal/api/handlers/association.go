package handlers

import (
	"net/http"
	"strconv"

	"rally-backend/internal/auth"
	apperrors "rally-backend/internal/errors"
	"rally-backend/internal/repository"
	"rally-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultBatchLimit = 100

// AssociationHandler handles HTTP requests for user-player associations
type AssociationHandler struct {
	discoveryService *service.DiscoveryService
	associationRepo  repository.AssociationRepositoryInterface
}

// NewAssociationHandler creates a new association handler
func NewAssociationHandler(discoveryService *service.DiscoveryService, associationRepo repository.AssociationRepositoryInterface) *AssociationHandler {
	return &AssociationHandler{
		discoveryService: discoveryService,
		associationRepo:  associationRepo,
	}
}

// DiscoverBody represents the optional request body for POST /associations/discover
type DiscoverBody struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// GetMyAssociations handles GET /associations/me
// @Summary List the current user's player associations
// @Description Return every player directory entry linked to the authenticated user
// @Tags associations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Associations for the current user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /associations/me [get]
func (h *AssociationHandler) GetMyAssociations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	associations, err := h.associationRepo.GetByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load associations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"associations": associations,
		"count":        len(associations),
	})
}

// DiscoverMine handles POST /associations/discover
// @Summary Run association discovery for the current user
// @Description Match the user's name and email against the player directory and
// @Description link any entries not yet associated. Safe to call repeatedly.
// @Tags associations
// @Accept json
// @Produce json
// @Param body body DiscoverBody false "Optional email override"
// @Success 200 {object} service.DiscoveryResult "Discovery outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 503 {object} ErrorResponse "Candidate lookup unavailable"
// @Security BearerAuth
// @Router /associations/discover [post]
func (h *AssociationHandler) DiscoverMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var body DiscoverBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	result, err := h.discoveryService.DiscoverMissingAssociations(userID, body.Email)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case apperrors.IsCandidateLookup(err):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "player directory temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "discovery failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DiscoverAll handles POST /associations/discover-all
// @Summary Run association discovery across users
// @Description Process up to limit users, fewest-associated first. Admin only.
// @Tags associations
// @Accept json
// @Produce json
// @Param limit query int false "Maximum users to process" default(100)
// @Success 200 {object} service.BatchResult "Batch outcome"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Security BearerAuth
// @Router /associations/discover-all [post]
func (h *AssociationHandler) DiscoverAll(c *gin.Context) {
	limit := defaultBatchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	batch, err := h.discoveryService.DiscoverForAllUsers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "batch discovery failed"})
		return
	}

	c.JSON(http.StatusOK, batch)
}
