package ports

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// The integration ports below are what the HTTP layer talks to for the
// third-party services the business uses. The shipped adapters simulate the
// remote APIs; a real client only has to satisfy the same interface.

type Calendar interface {
	ListEvents(ctx context.Context) ([]domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, in domain.NewCalendarEvent) (*domain.CreatedCalendarEvent, error)
}

type Drive interface {
	Upload(ctx context.Context, in domain.DriveUpload) (*domain.DriveFile, error)
}

type Sheets interface {
	Update(ctx context.Context, in domain.SheetUpdate) (*domain.SheetUpdateResult, error)
}

type Billing interface {
	IssueBoleto(ctx context.Context, in domain.BoletoRequest) (*domain.Boleto, error)
}

type Notifier interface {
	Schedule(ctx context.Context, in domain.NotificationRequest) (*domain.Notification, error)
}

// Integrations groups every integration adapter the router wires.
type Integrations struct {
	Calendar Calendar
	Drive    Drive
	Sheets   Sheets
	Billing  Billing
	Notifier Notifier
}
