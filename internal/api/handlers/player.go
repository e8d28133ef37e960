package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"rally-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// PlayerHandler handles HTTP requests for the player directory
type PlayerHandler struct {
	playerRepo repository.PlayerRepositoryInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerRepo repository.PlayerRepositoryInterface) *PlayerHandler {
	return &PlayerHandler{playerRepo: playerRepo}
}

// SearchPlayers handles GET /players/search
// @Summary Search the player directory by name
// @Description Case-insensitive substring search over first and last names,
// @Description active entries only
// @Tags players
// @Accept json
// @Produce json
// @Param q query string true "Name fragment to search for"
// @Param limit query int false "Page size" default(20) maximum(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{} "Matching players"
// @Failure 400 {object} ErrorResponse "Missing or invalid query"
// @Security BearerAuth
// @Router /players/search [get]
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q parameter is required"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		if parsed > maxSearchLimit {
			parsed = maxSearchLimit
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "offset must be a non-negative integer"})
			return
		}
		offset = parsed
	}

	players, total, err := h.playerRepo.SearchByName(query, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": players,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}
