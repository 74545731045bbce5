package ports

import (
	"context"
)

// Notification is a fire-and-forget message to a driver or an operator.
type Notification struct {
	RecipientID string
	Message     string
	Channel     string
}

// Notification channels currently emitted by the command layer.
const (
	ChannelDriver = "driver"
	ChannelOps    = "ops"
)

// NotificationSink delivers notifications emitted after a command commits.
// Delivery is best-effort: implementations log failures and never surface
// them to the caller, so a broken sink cannot fail a committed command.
type NotificationSink interface {
	Notify(ctx context.Context, notification Notification)
}
