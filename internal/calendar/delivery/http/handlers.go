package http

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/middleware"
	pkgErrors "calendar-connect/pkg/errors"
	"calendar-connect/pkg/response"
)

// List godoc
// @Summary     List events
// @Description Returns events merged across the user's selected calendars, sorted by start time.
// @Tags        Calendar
// @Produce     json
// @Param       start       query string false "Window start (RFC3339 or YYYY-MM-DD, default today)"
// @Param       end         query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param       calendar_id query string false "Restrict to one calendar"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not connected or authorization expired"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.List(ctx, middleware.UserID(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListEventsResp(events))
}

// Create godoc
// @Summary     Create event
// @Description Creates an event on the given calendar (primary when omitted).
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not connected or authorization expired"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	created, err := h.uc.CreateEvent(ctx, middleware.UserID(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newEventResp(created))
}

// Update godoc
// @Summary     Update event
// @Description Partially updates an event; empty fields keep the remote value.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Event ID"
// @Param       body body updateEventReq true "Fields to update"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	updated, err := h.uc.UpdateEvent(ctx, middleware.UserID(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newEventResp(updated))
}

// Delete godoc
// @Summary     Delete event
// @Description Removes an event from the given calendar (primary when omitted).
// @Tags        Calendar
// @Produce     json
// @Param       id          path  string true  "Event ID"
// @Param       calendar_id query string false "Calendar ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	input := calendar.DeleteEventInput{
		CalendarID: c.Query("calendar_id"),
		EventID:    c.Param("id"),
	}
	if err := h.uc.DeleteEvent(ctx, middleware.UserID(c), input); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
