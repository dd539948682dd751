package calendar

import "errors"

var (
	ErrInvalidRange    = errors.New("time range start must be before end")
	ErrInvalidInterval = errors.New("event start must be before end")
	ErrMissingEventID  = errors.New("event id is required")
)
