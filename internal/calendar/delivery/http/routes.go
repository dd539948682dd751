package http

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.Auth(), h.List)
		events.POST("", mw.Auth(), h.Create)
		events.PUT("/:id", mw.Auth(), h.Update)
		events.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
