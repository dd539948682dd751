package calendar

import (
	"context"
	"time"

	"calendar-connect/internal/model"
)

// Aggregator is the flat multi-calendar event view other domains consume.
// Callers never see individual calendar failures, only the merged list.
type Aggregator interface {
	FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]model.NormalizedEvent, error)
}

// UseCase is the full calendar surface: aggregation plus event writes
// against the connected provider.
type UseCase interface {
	Aggregator

	List(ctx context.Context, userID string, input FetchEventsInput) ([]model.NormalizedEvent, error)
	CreateEvent(ctx context.Context, userID string, input CreateEventInput) (model.NormalizedEvent, error)
	UpdateEvent(ctx context.Context, userID string, input UpdateEventInput) (model.NormalizedEvent, error)
	DeleteEvent(ctx context.Context, userID string, input DeleteEventInput) error
}
