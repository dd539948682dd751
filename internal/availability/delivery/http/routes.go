package http

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/suggest", mw.Auth(), h.Suggest)
}
