package repository

import "errors"

// ErrInvalidInput is returned when a repository is asked to store something it cannot key.
var ErrInvalidInput = errors.New("invalid input")
