package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListNotifications)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUnreadCount)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailMarkRead)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItem(notification))
}
