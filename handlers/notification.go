package handlers

import (
	"net/http"

	"salonbook/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the single-slot status banner.
type NotificationHandler struct {
	Presenter notification.Presenter
	Logger    *zap.Logger
}

func NewNotificationHandler(presenter notification.Presenter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Presenter: presenter, Logger: logger}
}

// CurrentNotificationHandler handles GET /api/notifications/current.
// Responds 204 when the slot is empty or expired.
func (h *NotificationHandler) CurrentNotificationHandler(c *gin.Context) {
	current, err := h.Presenter.Current(c.Request.Context())
	if err != nil {
		h.Logger.Error("CurrentNotificationHandler: failed to read notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read notification",
			"message": err.Error(),
		})
		return
	}
	if current == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, current)
}
