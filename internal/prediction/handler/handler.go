// Package handler provides HTTP handlers for prediction endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/prediction/model"
	"github.com/footypool/prediction-pool/internal/prediction/service"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

// Handler handles HTTP requests for prediction endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new prediction handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Submit handles POST /predictions/submit request.
func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidAccessKey):
			errorResponse(c, "UNAUTHORIZED", "invalid access key", http.StatusUnauthorized)
		case errors.Is(err, model.ErrWeekNotOpen):
			conflictResponse(c, "week is not open for predictions")
		case errors.Is(err, model.ErrInvalidOutcome):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		case errors.Is(err, weekmodel.ErrMatchNotFound):
			notFoundResponse(c, "match not found")
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListByUser handles GET /predictions/getByUser request. The caller
// passes access_key and week_id as query parameters.
func (h *Handler) ListByUser(c *gin.Context) {
	accessKey := c.Query("access_key")
	if accessKey == "" {
		errorResponse(c, "INVALID_REQUEST", "access_key parameter is required", http.StatusBadRequest)
		return
	}

	weekID := c.Query("week_id")
	if weekID == "" {
		errorResponse(c, "INVALID_REQUEST", "week_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListByUser(c.Request.Context(), accessKey, weekID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidAccessKey):
			errorResponse(c, "UNAUTHORIZED", "invalid access key", http.StatusUnauthorized)
		case errors.Is(err, weekmodel.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
