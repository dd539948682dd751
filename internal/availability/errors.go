package availability

import "errors"

var (
	ErrInvalidDuration   = errors.New("duration must be positive and at most 24 hours")
	ErrInvalidPreference = errors.New("unknown time preference")
)
