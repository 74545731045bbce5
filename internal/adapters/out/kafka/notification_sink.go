// Package kafka publishes outbound notifications to a Kafka topic. Consumers
// downstream (driver app push gateway, ops dashboard feed) pick them up from
// there; this adapter only guarantees the handoff to the broker.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationEnvelope is the wire format of a published notification.
type notificationEnvelope struct {
	RecipientID string    `json:"recipient_id"`
	Message     string    `json:"message"`
	Channel     string    `json:"channel"`
	SentAt      time.Time `json:"sent_at"`
}

// NotificationSink implements ports.NotificationSink on top of a Kafka
// writer. Notify is fire-and-forget: publish failures are logged and
// swallowed, matching the best-effort contract of the port.
type NotificationSink struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotificationSink creates a sink publishing to the given topic.
// Brokers is a comma-separated address list.
func NewNotificationSink(brokers string, topic string, logger *slog.Logger) *NotificationSink {
	return &NotificationSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
		logger: logger,
	}
}

// Notify publishes the notification keyed by recipient, so notifications to
// the same recipient preserve order within a partition.
func (s *NotificationSink) Notify(ctx context.Context, notification ports.Notification) {
	payload, err := json.Marshal(notificationEnvelope{
		RecipientID: notification.RecipientID,
		Message:     notification.Message,
		Channel:     notification.Channel,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode notification",
			slog.String("recipient", notification.RecipientID), slog.Any("error", err))
		return
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.RecipientID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish notification",
			slog.String("recipient", notification.RecipientID),
			slog.String("channel", notification.Channel),
			slog.Any("error", err))
	}
}

// Close flushes and closes the underlying writer.
func (s *NotificationSink) Close() error {
	return s.writer.Close()
}
