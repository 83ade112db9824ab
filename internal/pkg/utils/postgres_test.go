package utils

import (
	"errors"
	"fmt"
	"testing"
	"valivio-service/internal/pkg/constvars"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorCode(t *testing.T) {
	unique := &pq.Error{Code: constvars.PostgresUniqueViolation}

	assert.Equal(t, constvars.PostgresUniqueViolation, PostgresErrorCode(unique))
	assert.Equal(t, constvars.PostgresUniqueViolation, PostgresErrorCode(fmt.Errorf("insert: %w", unique)))
	assert.Equal(t, "", PostgresErrorCode(errors.New("connection refused")))
	assert.Equal(t, "", PostgresErrorCode(nil))
}
