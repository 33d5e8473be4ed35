package model

import (
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

// SubmitPredictionRequest represents a request to record one forecast.
// The caller identifies themselves by access key, not user_id.
type SubmitPredictionRequest struct {
	AccessKey        string             `json:"access_key" binding:"required"`
	MatchID          string             `json:"match_id" binding:"required"`
	PredictedOutcome *weekmodel.Outcome `json:"predicted_outcome" binding:"required"`
}

// SubmitPredictionResponse represents the stored prediction.
type SubmitPredictionResponse struct {
	Prediction *Prediction `json:"prediction"`
}

// ListByUserResponse represents a user's predictions for one week.
type ListByUserResponse struct {
	Predictions []Prediction `json:"predictions"`
	Total       int          `json:"total"`
}
