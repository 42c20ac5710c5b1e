package services

import (
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"
)

// rolePurposes are the per-role feed allow-lists. The feed query is always
// restricted to the caller's list; there is no generic "all my
// notifications" view, so a purpose outside the role's set is invisible
// even when the row's receiver matches.
var rolePurposes = map[models.UserRole][]models.NotificationPurpose{
	models.UserRoleClient: {
		models.PurposeRejected,
		models.PurposeApproved,
		models.PurposeApprovedOnline,
		models.PurposePaymentConfirmed,
		models.PurposePaymentDenied,
		models.PurposeReschedule,
		models.PurposeCompleted,
	},
	models.UserRoleLawyer: {
		models.PurposeRequest,
		models.PurposePaymentSubmitted,
		models.PurposeApprovedBySecretary,
		models.PurposeApplication,
	},
	models.UserRoleSecretary: {
		models.PurposeApplicationAccepted,
		models.PurposeApplicationRejected,
	},
}

// PurposesForRole returns the feed allow-list for a role. Unknown roles get
// an empty list, which the repository treats as "no rows".
func PurposesForRole(role models.UserRole) []models.NotificationPurpose {
	return rolePurposes[role]
}

type NotificationService interface {
	ListForUser(userID uint, role models.UserRole, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)

	// MarkRead flips a single notification to read. Only the receiver may
	// do it; repeating the call is a no-op.
	MarkRead(userID, notificationID uint) error

	UnreadCount(userID uint, role models.UserRole) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListForUser(userID uint, role models.UserRole, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	purposes := PurposesForRole(role)

	notifications, total, err := s.notificationRepo.FindByReceiver(userID, purposes, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.UnreadCount(userID, purposes)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(userID, notificationID uint) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return apperrors.ErrNotFound(err, "notification")
	}
	if notification.ReceiverID != userID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID uint, role models.UserRole) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID, PurposesForRole(role))
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func buildNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:             n.ID,
		ConsultationID: n.ConsultationID,
		SenderID:       n.SenderID,
		ReceiverID:     n.ReceiverID,
		Purpose:        n.Purpose,
		Status:         n.Status,
		CreatedAt:      n.CreatedAt,
	}
}
