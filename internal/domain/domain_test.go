package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
)

func TestParseID(t *testing.T) {
	valid := "652f1c2e9b1e8a3d4c5b6a79"

	id, err := domain.ParseID(valid)
	require.NoError(t, err)
	assert.Equal(t, domain.ID(valid), id)

	upper, err := domain.ParseID(strings.ToUpper(valid))
	require.NoError(t, err)
	assert.Equal(t, domain.ID(valid), upper, "ids são normalizados para minúsculas")

	for _, bad := range []string{"", valid[:23], valid + "0", "zz2f1c2e9b1e8a3d4c5b6a79"} {
		_, err := domain.ParseID(bad)
		assert.IsType(t, &apperror.ValidationError{}, err, bad)
	}
}

func TestNewID_IsParseable(t *testing.T) {
	id := domain.NewID()
	assert.Len(t, id.String(), 24)

	parsed, err := domain.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestAccountStatusTransitions(t *testing.T) {
	assert.True(t, domain.AccountInactive.CanTransitionTo(domain.AccountActive))
	assert.True(t, domain.AccountInactive.CanTransitionTo(domain.AccountDeleted))
	assert.True(t, domain.AccountActive.CanTransitionTo(domain.AccountDeleted))
	assert.False(t, domain.AccountActive.CanTransitionTo(domain.AccountInactive))
	assert.False(t, domain.AccountDeleted.CanTransitionTo(domain.AccountActive))
	assert.False(t, domain.AccountDeleted.CanTransitionTo(domain.AccountDeleted))
}

func TestAppointmentStatusTransitions(t *testing.T) {
	assert.True(t, domain.AppointmentConfirmed.CanTransitionTo(domain.AppointmentRescheduled))
	assert.True(t, domain.AppointmentRescheduled.CanTransitionTo(domain.AppointmentRescheduled))
	assert.True(t, domain.AppointmentRescheduled.CanTransitionTo(domain.AppointmentCompleted))
	assert.False(t, domain.AppointmentCancelled.CanTransitionTo(domain.AppointmentConfirmed))
	assert.False(t, domain.AppointmentCompleted.CanTransitionTo(domain.AppointmentCancelled))
}

func TestComplaintStatusTransitions(t *testing.T) {
	assert.True(t, domain.ComplaintUnanswered.CanTransitionTo(domain.ComplaintAnswered))
	assert.True(t, domain.ComplaintUnanswered.CanTransitionTo(domain.ComplaintDeleted))
	assert.False(t, domain.ComplaintAnswered.CanTransitionTo(domain.ComplaintDeleted))
	assert.False(t, domain.ComplaintDeleted.CanTransitionTo(domain.ComplaintDeleted))
}

func TestParseAppointmentStatus_CaseInsensitive(t *testing.T) {
	st, ok := domain.ParseAppointmentStatus("confirmada")
	assert.True(t, ok)
	assert.Equal(t, domain.AppointmentConfirmed, st)

	_, ok = domain.ParseAppointmentStatus("PERDIDA")
	assert.False(t, ok)
}

func TestCalendarEntryFor(t *testing.T) {
	a := domain.Appointment{DateTime: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)}

	entry := domain.CalendarEntryFor(a)

	assert.Equal(t, "2025-03-10T14:30:00", entry.Start)
	assert.Equal(t, "2025-03-10T15:30:00", entry.End)
}

func TestVerificationCodeExpiredAt(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	code := domain.VerificationCode{Code: "ABC123", CreatedAt: created}

	assert.False(t, code.ExpiredAt(created.Add(15*time.Minute), 15*time.Minute))
	assert.True(t, code.ExpiredAt(created.Add(16*time.Minute), 15*time.Minute))
}
