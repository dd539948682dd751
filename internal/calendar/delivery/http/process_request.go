package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-connect/internal/calendar"
	pkgErrors "calendar-connect/pkg/errors"
)

// processListReq parses the start/end/calendar_id query filters. Times
// accept RFC3339 or a bare date; a bare end date means end of that day.
func (h *handler) processListReq(c *gin.Context) (calendar.FetchEventsInput, error) {
	input := calendar.FetchEventsInput{CalendarID: c.Query("calendar_id")}

	from, err := parseTimeParam(c.Query("start"), false)
	if err != nil {
		return input, pkgErrors.NewHTTPError(400, "invalid start parameter")
	}
	to, err := parseTimeParam(c.Query("end"), true)
	if err != nil {
		return input, pkgErrors.NewHTTPError(400, "invalid end parameter")
	}

	// Default window: today in UTC.
	now := time.Now().UTC()
	if from.IsZero() {
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = from.Add(24 * time.Hour)
	}

	input.From = from
	input.To = to
	return input, nil
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update event body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.EventID = c.Param("id")
	return req, nil
}

func parseTimeParam(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24 * time.Hour)
	}
	return t, nil
}
