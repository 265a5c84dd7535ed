package controllers

import (
	"net/http"

	"shawon-burger/notify"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

func GetNotifications(notifications *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := notifications.List(ctx, c.Query("unread") == "true")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func MarkNotificationRead(notifications *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "notification")
		if !ok {
			return
		}
		if err := notifications.MarkRead(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}

// HandleWebSocket hands the connection to the hub for the rest of its life.
func HandleWebSocket(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.Serve(c.Writer, c.Request)
	}
}
