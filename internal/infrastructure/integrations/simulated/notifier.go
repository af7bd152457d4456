package simulated

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

const notificationStatusScheduled = "agendada"

// Notifier records scheduled notifications. Nothing is ever delivered.
type Notifier struct {
	now       func() time.Time
	scheduled atomic.Int64
}

func (n *Notifier) Schedule(_ context.Context, in domain.NotificationRequest) (*domain.Notification, error) {
	n.scheduled.Add(1)
	return &domain.Notification{
		ID:         newID("notif"),
		Channel:    in.Channel,
		Recipient:  in.Recipient,
		Message:    in.Message,
		SendAt:     in.SendAt,
		Recurrence: in.Recurrence,
		Status:     notificationStatusScheduled,
		CreatedAt:  n.now(),
	}, nil
}

// Scheduled returns how many notifications were scheduled since start.
func (n *Notifier) Scheduled() int64 {
	return n.scheduled.Load()
}
