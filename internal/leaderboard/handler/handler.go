// Package handler provides HTTP handlers for leaderboard endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/leaderboard/service"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

// Handler handles HTTP requests for leaderboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetWeekly handles GET /leaderboard/getWeekly request.
func (h *Handler) GetWeekly(c *gin.Context) {
	weekID := c.Query("week_id")
	if weekID == "" {
		errorResponse(c, "INVALID_REQUEST", "week_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetWeekly(c.Request.Context(), weekID)
	if err != nil {
		if errors.Is(err, weekmodel.ErrWeekNotFound) {
			notFoundResponse(c, "week not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOverall handles GET /leaderboard/getOverall request.
func (h *Handler) GetOverall(c *gin.Context) {
	resp, err := h.service.GetOverall(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
