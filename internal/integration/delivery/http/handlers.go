package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-connect/internal/integration"
	"calendar-connect/internal/middleware"
	pkgErrors "calendar-connect/pkg/errors"
	"calendar-connect/pkg/response"
)

// Detail godoc
// @Summary     Integration status
// @Description Returns whether the calendar provider is connected, the last sync time, and the selected calendars.
// @Tags        Integration
// @Produce     json
// @Success     200 {object} detailResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/integrations/google [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(out))
}

// Connect godoc
// @Summary     Start OAuth connect
// @Description Returns the provider consent URL (offline access, forced consent).
// @Tags        Integration
// @Produce     json
// @Param       state query string false "Opaque state tied to the user session"
// @Success     200 {object} connectResp
// @Router      /api/v1/integrations/google/connect [POST]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	if state == "" {
		state = uuid.NewString()
	}

	out := h.uc.Connect(ctx, state)
	response.OK(c, connectResp{AuthURL: out.AuthURL})
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code and stores the encrypted credential set.
// @Tags        Integration
// @Produce     json
// @Param       code  query string true  "Authorization code"
// @Param       state query string false "Opaque state"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Missing code"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/integrations/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	input := integration.CallbackInput{
		Code:  c.Query("code"),
		State: c.Query("state"),
	}
	if err := h.uc.HandleCallback(ctx, userID, input); err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		h.respondError(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}
	response.OK(c, newDetailResp(out))
}

// ListCalendars godoc
// @Summary     List provider calendars
// @Description Returns the live calendar list from the provider for the selection UI.
// @Tags        Integration
// @Produce     json
// @Success     200 {object} listCalendarsResp
// @Failure     401 {object} response.Resp "Not connected or authorization expired"
// @Failure     429 {object} response.Resp "Provider rate limited"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/integrations/google/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	refs, err := h.uc.ListProviderCalendars(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProviderCalendars: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListCalendarsResp(refs))
}

// UpdateCalendars godoc
// @Summary     Update calendar selection
// @Description Replaces the list of calendars aggregated for this user.
// @Tags        Integration
// @Accept      json
// @Produce     json
// @Param       body body updateCalendarsReq true "Calendar selection"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not connected"
// @Router      /api/v1/integrations/google/calendars [PUT]
func (h *handler) UpdateCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCalendarsReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	out, err := h.uc.UpdateCalendars(ctx, middleware.UserID(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCalendars: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(out))
}

// Revoke godoc
// @Summary     Disconnect provider
// @Description Best-effort revokes the remote grant and deletes the stored credential set.
// @Tags        Integration
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Not connected"
// @Router      /api/v1/integrations/google [DELETE]
func (h *handler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Revoke(ctx, middleware.UserID(c)); err != nil {
		h.l.Errorf(ctx, "uc.Revoke: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
