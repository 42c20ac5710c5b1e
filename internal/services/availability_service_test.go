package services

import (
	"testing"

	"lawlink_backend/internal/models"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityUpsertAndGet(t *testing.T) {
	env := newTestEnv()
	lawyer := env.addUser(models.UserRoleLawyer, 500)

	req := &dto.UpsertAvailabilityRequest{
		MorningStart: "08:00",
		MorningEnd:   "11:00",
		EveningStart: "13:00",
		EveningEnd:   "14:15",
		WorkdayStart: "Monday",
		WorkdayEnd:   "Friday",
	}

	resp, err := env.availability.Upsert(lawyer.ID, req)
	require.NoError(t, err)

	// Slots walk both windows in 30-minute steps inclusive of the ends; a
	// window not aligned to 30 minutes still includes its end instant.
	assert.Equal(t, []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00",
		"13:00", "13:30", "14:00", "14:15",
	}, resp.Slots)

	got, err := env.availability.Get(lawyer.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Slots, got.Slots)

	// Second upsert overwrites in place.
	req.EveningEnd = "17:00"
	_, err = env.availability.Upsert(lawyer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "17:00", env.state.availability[lawyer.ID].EveningEnd)
}

func TestAvailabilityUpsertGuards(t *testing.T) {
	env := newTestEnv()
	lawyer := env.addUser(models.UserRoleLawyer, 500)
	client := env.addUser(models.UserRoleClient, 0)

	valid := dto.UpsertAvailabilityRequest{
		MorningStart: "08:00",
		MorningEnd:   "11:00",
		EveningStart: "13:00",
		EveningEnd:   "17:00",
	}

	t.Run("clients cannot set hours", func(t *testing.T) {
		req := valid
		_, err := env.availability.Upsert(client.ID, &req)
		assertCode(t, err, apperrors.CodeForbidden)
	})

	t.Run("window must run forward", func(t *testing.T) {
		req := valid
		req.MorningEnd = "07:00"
		_, err := env.availability.Upsert(lawyer.ID, &req)
		assertCode(t, err, apperrors.CodeValidationFailed)
	})

	t.Run("windows must not overlap", func(t *testing.T) {
		req := valid
		req.MorningEnd = "14:00"
		_, err := env.availability.Upsert(lawyer.ID, &req)
		assertCode(t, err, apperrors.CodeValidationFailed)
	})
}

func TestAvailabilityGetMissing(t *testing.T) {
	env := newTestEnv()
	_, err := env.availability.Get(42)
	assertCode(t, err, apperrors.CodeNotFound)
}
