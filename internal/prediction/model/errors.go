package model

import "errors"

var (
	// ErrPredictionNotFound is returned when a prediction does not exist.
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrWeekNotOpen is returned when the match's week does not accept predictions.
	ErrWeekNotOpen = errors.New("week is not open for predictions")

	// ErrInvalidOutcome is returned when the predicted outcome is not 0, 1 or 2.
	ErrInvalidOutcome = errors.New("invalid predicted outcome")

	// ErrInvalidAccessKey is returned when no active user matches the access key.
	ErrInvalidAccessKey = errors.New("invalid access key")
)
