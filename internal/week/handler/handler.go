// Package handler provides HTTP handlers for week and match endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/week/model"
	"github.com/footypool/prediction-pool/internal/week/service"
)

// Handler handles HTTP requests for week and match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new week handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateWeek handles POST /admin/weeks/create request.
func (h *Handler) CreateWeek(c *gin.Context) {
	var req model.CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	week, err := h.service.CreateWeek(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWeekExists):
			conflictResponse(c, "week already exists")
		case errors.Is(err, model.ErrInvalidWeekNumber):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.WeekResponse{Week: *week})
}

// ListWeeks handles GET /weeks/list request. The optional status query
// parameter narrows the listing.
func (h *Handler) ListWeeks(c *gin.Context) {
	status := c.Query("status")

	weeks, err := h.service.ListWeeks(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.ListWeeksResponse{Weeks: weeks, Total: len(weeks)})
}

// GetMatches handles GET /weeks/getMatches request.
func (h *Handler) GetMatches(c *gin.Context) {
	weekID := c.Query("week_id")
	if weekID == "" {
		errorResponse(c, "INVALID_REQUEST", "week_id parameter is required", http.StatusBadRequest)
		return
	}

	week, matches, err := h.service.GetMatches(c.Request.Context(), weekID)
	if err != nil {
		if errors.Is(err, model.ErrWeekNotFound) {
			notFoundResponse(c, "week not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.ListMatchesResponse{
		WeekID:  week.WeekID,
		Matches: matches,
		Total:   len(matches),
	})
}

// OpenWeek handles POST /admin/weeks/open request.
func (h *Handler) OpenWeek(c *gin.Context) {
	var req model.OpenWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	week, err := h.service.OpenWeek(c.Request.Context(), req.WeekID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		case errors.Is(err, model.ErrInvalidTransition):
			conflictResponse(c, "week cannot be opened from its current status")
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.WeekResponse{Week: *week})
}

// CloseWeek handles POST /admin/weeks/close request. Closing also
// recomputes scores for all active users.
func (h *Handler) CloseWeek(c *gin.Context) {
	var req model.CloseWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CloseWeek(c.Request.Context(), req.WeekID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		case errors.Is(err, model.ErrInvalidTransition):
			conflictResponse(c, "week cannot be closed from its current status")
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateMatch handles POST /admin/matches/create request.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req model.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		case errors.Is(err, model.ErrMatchExists):
			conflictResponse(c, "match number already taken for this week")
		case errors.Is(err, model.ErrInvalidMatchNumber):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.MatchResponse{Match: *match})
}

// SetMatchResult handles POST /admin/matches/setResult request.
func (h *Handler) SetMatchResult(c *gin.Context) {
	var req model.SetMatchResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.SetMatchResult(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMatchNotFound):
			notFoundResponse(c, "match not found")
		case errors.Is(err, model.ErrInvalidOutcome):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: *match})
}

// SetMatchScore handles POST /admin/matches/setScore request.
func (h *Handler) SetMatchScore(c *gin.Context) {
	var req model.SetMatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.SetMatchScore(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: *match})
}
