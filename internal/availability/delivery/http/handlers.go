package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-connect/internal/middleware"
	pkgErrors "calendar-connect/pkg/errors"
	"calendar-connect/pkg/response"
)

// Suggest godoc
// @Summary     Suggest meeting slots
// @Description Returns up to five ranked, conflict-free slots on the requested day. An empty list means the day has no opening that fits.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Scheduling constraints"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not connected or authorization expired"
// @Router      /api/v1/availability/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSuggestReq(c)
	if err != nil {
		var httpErr *pkgErrors.HTTPError
		if !errors.As(err, &httpErr) {
			err = pkgErrors.NewHTTPError(400, "invalid request body")
		}
		response.Error(c, err)
		return
	}

	slots, err := h.uc.Suggest(ctx, middleware.UserID(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSuggestResp(slots))
}
