package http

import (
	"github.com/gin-gonic/gin"
)

// processUpdateCalendarsReq binds and validates the calendar selection body.
func (h *handler) processUpdateCalendarsReq(c *gin.Context) (updateCalendarsReq, error) {
	var req updateCalendarsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
