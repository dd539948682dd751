package http

import (
	"calendar-connect/internal/integration"
	"calendar-connect/pkg/log"
)

// Handler is the public interface for the integration HTTP delivery layer.
type Handler interface {
	Detail(c interface{})
	Connect(c interface{})
	Callback(c interface{})
	ListCalendars(c interface{})
	UpdateCalendars(c interface{})
	Revoke(c interface{})
}

type handler struct {
	l  log.Logger
	uc integration.UseCase
}

// New creates a new HTTP handler for the integration domain.
func New(l log.Logger, uc integration.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
