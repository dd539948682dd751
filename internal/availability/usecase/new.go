package usecase

import (
	"time"

	"calendar-connect/internal/availability"
	"calendar-connect/internal/calendar"
	"calendar-connect/pkg/log"
)

// implUseCase is the private implementation of availability.UseCase.
type implUseCase struct {
	l          log.Logger
	aggregator calendar.Aggregator

	// now is swapped in tests for deterministic date resolution.
	now func() time.Time
}

var _ availability.UseCase = (*implUseCase)(nil)

// New creates a new availability UseCase implementation.
func New(l log.Logger, aggregator calendar.Aggregator) *implUseCase {
	return &implUseCase{
		l:          l,
		aggregator: aggregator,
		now:        time.Now,
	}
}
