package services

import (
	"testing"

	"lawlink_backend/internal/models"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliationRequest(t *testing.T) {
	env := newTestEnv()
	secretary := env.addUser(models.UserRoleSecretary, 0)
	lawyer := env.addUser(models.UserRoleLawyer, 500)

	resp, err := env.affiliations.Request(secretary.ID, &dto.RequestAffiliationRequest{LawyerID: lawyer.ID})
	require.NoError(t, err)
	assert.Equal(t, models.AffiliationPending, resp.WorkStatus)

	applications := env.state.notificationsFor(lawyer.ID, models.PurposeApplication)
	require.Len(t, applications, 1)
	assert.Equal(t, secretary.ID, applications[0].SenderID)

	t.Run("duplicate while pending", func(t *testing.T) {
		_, err := env.affiliations.Request(secretary.ID, &dto.RequestAffiliationRequest{LawyerID: lawyer.ID})
		assertCode(t, err, apperrors.CodeAlreadyExists)
	})

	t.Run("target must be a lawyer", func(t *testing.T) {
		client := env.addUser(models.UserRoleClient, 0)
		_, err := env.affiliations.Request(secretary.ID, &dto.RequestAffiliationRequest{LawyerID: client.ID})
		assertCode(t, err, apperrors.CodeValidationFailed)
	})
}

func TestAffiliationDecide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		env := newTestEnv()
		secretary := env.addUser(models.UserRoleSecretary, 0)
		lawyer := env.addUser(models.UserRoleLawyer, 500)
		affiliation := env.addAffiliation(secretary.ID, lawyer.ID, models.AffiliationPending)

		require.NoError(t, env.affiliations.Decide(lawyer.ID, affiliation.ID, true))
		assert.Equal(t, models.AffiliationApproved, env.state.affiliations[affiliation.ID].WorkStatus)
		assert.Len(t, env.state.notificationsFor(secretary.ID, models.PurposeApplicationAccepted), 1)
		assert.Equal(t, []string{secretary.Email}, env.mail.affiliationsAccepted)
	})

	t.Run("reject", func(t *testing.T) {
		env := newTestEnv()
		secretary := env.addUser(models.UserRoleSecretary, 0)
		lawyer := env.addUser(models.UserRoleLawyer, 500)
		affiliation := env.addAffiliation(secretary.ID, lawyer.ID, models.AffiliationPending)

		require.NoError(t, env.affiliations.Decide(lawyer.ID, affiliation.ID, false))
		assert.Equal(t, models.AffiliationRejected, env.state.affiliations[affiliation.ID].WorkStatus)
		assert.Len(t, env.state.notificationsFor(secretary.ID, models.PurposeApplicationRejected), 1)
		assert.Empty(t, env.mail.affiliationsAccepted, "rejections do not send mail")
	})

	t.Run("only the addressed lawyer", func(t *testing.T) {
		env := newTestEnv()
		secretary := env.addUser(models.UserRoleSecretary, 0)
		lawyer := env.addUser(models.UserRoleLawyer, 500)
		other := env.addUser(models.UserRoleLawyer, 500)
		affiliation := env.addAffiliation(secretary.ID, lawyer.ID, models.AffiliationPending)

		err := env.affiliations.Decide(other.ID, affiliation.ID, true)
		assertCode(t, err, apperrors.CodeForbidden)
	})

	t.Run("already decided", func(t *testing.T) {
		env := newTestEnv()
		secretary := env.addUser(models.UserRoleSecretary, 0)
		lawyer := env.addUser(models.UserRoleLawyer, 500)
		affiliation := env.addAffiliation(secretary.ID, lawyer.ID, models.AffiliationApproved)

		err := env.affiliations.Decide(lawyer.ID, affiliation.ID, false)
		assertCode(t, err, apperrors.CodeValidationFailed)
	})
}
