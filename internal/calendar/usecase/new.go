package usecase

import (
	"context"
	"time"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/integration"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
	"calendar-connect/pkg/log"
)

// ProviderClient is the slice of the calendar provider facade this domain
// uses. Every call takes a plaintext access token from the vault.
type ProviderClient interface {
	ListEvents(ctx context.Context, token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error)
	CreateEvent(ctx context.Context, token string, req gcalendar.CreateEventRequest) (model.NormalizedEvent, error)
	UpdateEvent(ctx context.Context, token string, req gcalendar.UpdateEventRequest) (model.NormalizedEvent, error)
	DeleteEvent(ctx context.Context, token, calendarID, eventID string) error
}

const defaultCalendarTimeout = 10 * time.Second

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l        log.Logger
	vault    integration.TokenVault
	provider ProviderClient

	// calendarTimeout bounds each per-calendar provider call.
	calendarTimeout time.Duration
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase implementation. A non-positive
// calendarTimeout falls back to 10s.
func New(l log.Logger, vault integration.TokenVault, provider ProviderClient, calendarTimeout time.Duration) *implUseCase {
	if calendarTimeout <= 0 {
		calendarTimeout = defaultCalendarTimeout
	}
	return &implUseCase{
		l:               l,
		vault:           vault,
		provider:        provider,
		calendarTimeout: calendarTimeout,
	}
}
