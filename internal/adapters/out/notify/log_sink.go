// Package notify provides a logging notification sink for environments
// without a message broker. Notifications land in the structured log instead
// of a Kafka topic, which is enough for local development and tests.
package notify

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// LogSink implements ports.NotificationSink by writing each notification to
// the structured log.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink that logs notifications.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify logs the notification.
func (s *LogSink) Notify(ctx context.Context, notification ports.Notification) {
	s.logger.InfoContext(ctx, "notification",
		slog.String("recipient", notification.RecipientID),
		slog.String("channel", notification.Channel),
		slog.String("message", notification.Message))
}
