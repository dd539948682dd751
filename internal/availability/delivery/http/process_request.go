package http

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/internal/availability"
	pkgErrors "calendar-connect/pkg/errors"
)

// processSuggestReq binds and validates the suggestion request body.
func (h *handler) processSuggestReq(c *gin.Context) (availability.SuggestInput, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return availability.SuggestInput{}, err
	}

	input, err := req.toInput()
	if err != nil {
		return input, pkgErrors.NewHTTPError(400, "invalid preferred_date, expected YYYY-MM-DD")
	}
	return input, nil
}
