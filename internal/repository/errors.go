package repository

import "errors"

// ErrNotFound is returned when a lookup by key matches no row. It hides
// sql.ErrNoRows from the service layer, which maps it to its own errors.
var ErrNotFound = errors.New("repository: not found")
