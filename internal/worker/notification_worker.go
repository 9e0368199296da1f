package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/service"
)

// StartNotificationWorker subscribes grievance notifications to the
// dispatcher. It returns nil when there is no dispatcher to listen on.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"), cfg)
	notifications.RegisterHandlers()
	logger.Info("notification worker started",
		zap.Bool("email", cfg.EmailFrom != ""),
		zap.Bool("webhook", cfg.WebhookURL != ""))
	return notifications
}
