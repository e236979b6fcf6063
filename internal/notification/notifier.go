// Package notification adapts the message queue to the booking
// orchestrator's Notifier contract.
package notification

import (
    "context"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/queue"
)

// QueueNotifier publishes booking confirmations to RabbitMQ, where the
// background consumer turns them into customer emails.
type QueueNotifier struct{}

// NewQueueNotifier returns a QueueNotifier.
func NewQueueNotifier() *QueueNotifier {
    return &QueueNotifier{}
}

// NotifyBookingConfirmed publishes the event to the booking.confirmed
// queue. Broker errors propagate to the caller, which treats delivery as
// best effort.
func (n *QueueNotifier) NotifyBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
    return queue.PublishBookingConfirmed(ctx, ev)
}
