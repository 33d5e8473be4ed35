package model

import "errors"

var (
	// ErrWeekNotFound indicates that the requested week does not exist.
	ErrWeekNotFound = errors.New("week not found")
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrWeekExists indicates a week already exists for (week_number, year).
	ErrWeekExists = errors.New("week already exists")
	// ErrMatchExists indicates a match already exists for (week, match_number).
	ErrMatchExists = errors.New("match already exists")
	// ErrInvalidWeekID indicates that the provided week ID is invalid (e.g., empty).
	ErrInvalidWeekID = errors.New("invalid week ID")
	// ErrInvalidTransition indicates a week status change outside the lifecycle.
	ErrInvalidTransition = errors.New("invalid week status transition")
	// ErrInvalidOutcome indicates an outcome value outside {0, 1, 2}.
	ErrInvalidOutcome = errors.New("invalid outcome")
	// ErrInvalidWeekNumber indicates a non-positive week number or year.
	ErrInvalidWeekNumber = errors.New("invalid week number")
	// ErrInvalidMatchNumber indicates a non-positive match number.
	ErrInvalidMatchNumber = errors.New("invalid match number")
	// ErrInvalidStatus indicates an unknown week status value.
	ErrInvalidStatus = errors.New("invalid week status")
)
