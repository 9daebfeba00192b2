package domain

import "errors"

// ErrTableNotFound marks a store call against an absent backing table.
var ErrTableNotFound = errors.New("table not found")
