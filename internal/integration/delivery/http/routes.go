package http

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the resolved user identity, including the OAuth
// callback: the upstream gateway authenticates the browser session before
// the redirect reaches this service.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	google := rg.Group("/google")
	{
		google.GET("", mw.Auth(), h.Detail)
		google.DELETE("", mw.Auth(), h.Revoke)
		google.POST("/connect", mw.Auth(), h.Connect)
		google.GET("/callback", mw.Auth(), h.Callback)
		google.GET("/calendars", mw.Auth(), h.ListCalendars)
		google.PUT("/calendars", mw.Auth(), h.UpdateCalendars)
	}
}
