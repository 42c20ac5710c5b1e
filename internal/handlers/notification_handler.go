package handlers

import (
	"net/http"

	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services"
	"lawlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notifications services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notifications services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:   base,
		notifications: notifications,
	}
}

// List returns the caller's notification feed, filtered to the purposes
// their role receives.
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	criteria := repositories.NotificationCriteria{
		UnreadOnly: c.Query("unread") == "true",
		Page:       page,
		PageSize:   pageSize,
	}

	resp, err := h.notifications.ListForUser(h.GetUserID(c), h.GetRole(c), criteria)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead marks one of the caller's notifications as read.
// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(h.GetUserID(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// UnreadCount returns the caller's unread notification count.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.UnreadCount(h.GetUserID(c), h.GetRole(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
