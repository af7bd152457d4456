package simulated

import (
	"context"
	"time"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

const calendarEventLink = "https://calendar.google.com/calendar/event?eid=exemplo"

// Calendar simulates the agenda of visits and moves.
type Calendar struct {
	now func() time.Time
}

// ListEvents returns the fixed sample agenda.
func (c *Calendar) ListEvents(_ context.Context) ([]domain.CalendarEvent, error) {
	return []domain.CalendarEvent{
		{
			ID:      "evento1",
			Title:   "Visita - Carlos Silva",
			Date:    "2025-06-20",
			Time:    "09:00",
			Address: "Rua das Flores, 123",
			Kind:    "visita",
		},
		{
			ID:      "evento2",
			Title:   "Mudança - Ana Santos",
			Date:    "2025-06-21",
			Time:    "08:00",
			Address: "Av. Paulista, 456",
			Kind:    "mudanca",
		},
	}, nil
}

func (c *Calendar) CreateEvent(_ context.Context, in domain.NewCalendarEvent) (*domain.CreatedCalendarEvent, error) {
	return &domain.CreatedCalendarEvent{
		ID:        newID("evt"),
		Title:     in.Title,
		CreatedAt: c.now(),
		Link:      calendarEventLink,
	}, nil
}
