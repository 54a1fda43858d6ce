package activity

import "errors"

// ErrInvalidInput indicates an unusable history entry.
var ErrInvalidInput = errors.New("invalid activity input")
