package repository

import "errors"

// ErrNotFound is returned when a row with the requested id does not exist.
var ErrNotFound = errors.New("not found")
