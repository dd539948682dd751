package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"calendar-connect/internal/availability"
	"calendar-connect/internal/integration"
	pkgErrors "calendar-connect/pkg/errors"
	"calendar-connect/pkg/gcalendar"
	"calendar-connect/pkg/response"
)

// respondError renders the mapped error, attaching a Retry-After hint when
// the provider supplied one.
func (h *handler) respondError(c *gin.Context, err error) {
	var rl *gcalendar.RateLimitedError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
	}
	response.Error(c, h.mapError(err))
}

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrInvalidPreference):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, integration.ErrNotConnected):
		return pkgErrors.NewHTTPError(401, "calendar provider not connected")
	case errors.Is(err, integration.ErrAuthExpired),
		errors.Is(err, gcalendar.ErrUnauthorized):
		return pkgErrors.NewHTTPError(401, "calendar authorization expired, please reconnect")
	case errors.Is(err, gcalendar.ErrRateLimited):
		return pkgErrors.ErrTooManyRequests
	case errors.Is(err, integration.ErrProviderUnavailable),
		errors.Is(err, gcalendar.ErrProviderUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
