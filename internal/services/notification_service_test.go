package services

import (
	"testing"

	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addNotification(env *testEnv, receiverID uint, purpose models.NotificationPurpose) *models.Notification {
	n := &models.Notification{
		ReceiverID: receiverID,
		Purpose:    purpose,
		Status:     models.NotificationUnread,
	}
	n.ID = env.state.id()
	env.state.notifications = append(env.state.notifications, n)
	return n
}

func TestFeedAllowLists(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(models.UserRoleClient, 0)

	// A mix of client-facing and lawyer-facing rows, all addressed to the
	// same receiver id.
	addNotification(env, user.ID, models.PurposeApproved)
	addNotification(env, user.ID, models.PurposeReschedule)
	addNotification(env, user.ID, models.PurposeRequest)          // lawyer feed only
	addNotification(env, user.ID, models.PurposePaymentSubmitted) // lawyer feed only

	t.Run("client feed hides lawyer purposes", func(t *testing.T) {
		resp, err := env.notifications.ListForUser(user.ID, models.UserRoleClient, repositories.NotificationCriteria{})
		require.NoError(t, err)
		require.Len(t, resp.Notifications, 2)
		for _, n := range resp.Notifications {
			assert.Contains(t, PurposesForRole(models.UserRoleClient), n.Purpose)
		}
	})

	t.Run("lawyer feed sees only lawyer purposes", func(t *testing.T) {
		resp, err := env.notifications.ListForUser(user.ID, models.UserRoleLawyer, repositories.NotificationCriteria{})
		require.NoError(t, err)
		require.Len(t, resp.Notifications, 2)
		assert.Equal(t, int64(2), resp.UnreadCount)
	})

	t.Run("unknown role gets an empty feed", func(t *testing.T) {
		resp, err := env.notifications.ListForUser(user.ID, models.UserRole("paralegal"), repositories.NotificationCriteria{})
		require.NoError(t, err)
		assert.Empty(t, resp.Notifications)
		assert.Zero(t, resp.UnreadCount)
	})
}

func TestPurposeOwnership(t *testing.T) {
	// Every purpose belongs to exactly one role's feed.
	seen := map[models.NotificationPurpose]models.UserRole{}
	for _, role := range []models.UserRole{models.UserRoleClient, models.UserRoleLawyer, models.UserRoleSecretary} {
		for _, purpose := range PurposesForRole(role) {
			if owner, dup := seen[purpose]; dup {
				t.Errorf("purpose %q appears in both %s and %s feeds", purpose, owner, role)
			}
			seen[purpose] = role
		}
	}
}

func TestMarkRead(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(models.UserRoleClient, 0)
	other := env.addUser(models.UserRoleClient, 0)
	n := addNotification(env, user.ID, models.PurposeApproved)

	t.Run("only the receiver", func(t *testing.T) {
		err := env.notifications.MarkRead(other.ID, n.ID)
		assertCode(t, err, apperrors.CodeForbidden)
	})

	t.Run("marks and stays read", func(t *testing.T) {
		require.NoError(t, env.notifications.MarkRead(user.ID, n.ID))
		assert.Equal(t, models.NotificationRead, n.Status)

		// Idempotent.
		require.NoError(t, env.notifications.MarkRead(user.ID, n.ID))

		count, err := env.notifications.UnreadCount(user.ID, models.UserRoleClient)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := env.notifications.MarkRead(user.ID, 9999)
		assertCode(t, err, apperrors.CodeNotFound)
	})
}

func TestUnreadOnlyFilter(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(models.UserRoleClient, 0)
	read := addNotification(env, user.ID, models.PurposeApproved)
	read.Status = models.NotificationRead
	addNotification(env, user.ID, models.PurposeRejected)

	resp, err := env.notifications.ListForUser(user.ID, models.UserRoleClient, repositories.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, models.PurposeRejected, resp.Notifications[0].Purpose)
}
