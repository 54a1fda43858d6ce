package training

import "errors"

var (
	// ErrSessionNotFound indicates the training session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrExerciseNotFound indicates the exercise doesn't exist in the session.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrInvalidInput indicates invalid session or exercise input.
	ErrInvalidInput = errors.New("invalid training input")
)
