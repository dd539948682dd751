package http

import (
	"calendar-connect/internal/calendar"
	"calendar-connect/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Create(c interface{})
	Update(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
