package repositories

import (
	"errors"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationCriteria narrows a feed query.
type NotificationCriteria struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page" binding:"min=0"`
	PageSize   int  `form:"page_size" binding:"min=0,max=100"`
}

type NotificationRepository interface {
	Create(notification *models.Notification) error

	// FindByReceiver returns the receiver's feed restricted to the given
	// purposes, most recent first. The purpose allow-list is mandatory:
	// there is no unfiltered inbox query.
	FindByReceiver(receiverID uint, purposes []models.NotificationPurpose, criteria NotificationCriteria) ([]models.Notification, int64, error)

	FindByID(id uint) (*models.Notification, error)

	// MarkAsRead is an idempotent single-row update.
	MarkAsRead(id uint) error

	UnreadCount(receiverID uint, purposes []models.NotificationPurpose) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByReceiver(receiverID uint, purposes []models.NotificationPurpose, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	if len(purposes) == 0 {
		return nil, 0, nil
	}

	query := r.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND purpose IN ?", receiverID, purposes)

	if criteria.UnreadOnly {
		query = query.Where("status = ?", models.NotificationUnread)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.PageSize > 0 {
		page := criteria.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(criteria.PageSize).Offset((page - 1) * criteria.PageSize)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(id uint) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("status", models.NotificationRead)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) UnreadCount(receiverID uint, purposes []models.NotificationPurpose) (int64, error) {
	if len(purposes) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND purpose IN ? AND status = ?", receiverID, purposes, models.NotificationUnread).
		Count(&count).Error
	return count, err
}
