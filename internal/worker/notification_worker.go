package worker

import (
	"github.com/cleanwater/report-service/internal/service"
)

// StartNotificationWorker wires the notification service into the event
// dispatcher so report lifecycle events trigger outbound notifications.
func StartNotificationWorker(notifications *service.NotificationService) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
}
