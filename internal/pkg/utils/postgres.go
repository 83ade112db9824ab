package utils

import (
	"errors"

	"github.com/lib/pq"
)

// PostgresErrorCode returns the SQLSTATE carried by err, or "" when err did
// not come from the server.
func PostgresErrorCode(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	return string(pqErr.Code)
}
