package worker

import (
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to the
// appointment lifecycle events.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService) {
	if dispatcher == nil || notifications == nil {
		return
	}
	notifications.Register(dispatcher)
}
