package repository

import (
	"strings"
)

// IsDuplicateError reports whether err was caused by a unique constraint.
// The storage-layer unique index is the source of truth for every
// pair-uniqueness rule, so two concurrent identical inserts produce exactly
// one success and one error recognized here.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // mysql 1062
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
