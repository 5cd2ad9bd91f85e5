package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"gosalon/internal/pkg/database"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "appointments_active_slot_idx"}

	assert.True(t, database.IsUniqueViolation(dup, ""))
	assert.True(t, database.IsUniqueViolation(dup, "appointments_active_slot_idx"))
	assert.True(t, database.IsUniqueViolation(fmt.Errorf("insert: %w", dup), "appointments_active_slot_idx"))
	assert.False(t, database.IsUniqueViolation(dup, "accounts_active_email_idx"))

	assert.False(t, database.IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, database.IsUniqueViolation(errors.New("boom"), ""))
	assert.False(t, database.IsUniqueViolation(nil, ""))
}
