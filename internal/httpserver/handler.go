package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	availabilityHTTP "calendar-connect/internal/availability/delivery/http"
	availabilityUC "calendar-connect/internal/availability/usecase"
	calendarHTTP "calendar-connect/internal/calendar/delivery/http"
	calendarUC "calendar-connect/internal/calendar/usecase"
	integrationHTTP "calendar-connect/internal/integration/delivery/http"
	integrationRepo "calendar-connect/internal/integration/repository/postgre"
	integrationUC "calendar-connect/internal/integration/usecase"
	"calendar-connect/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the domains in dependency order: the token
// vault feeds the calendar aggregator, which feeds availability.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.cfg)
	api := srv.gin.Group("/api/v1", mw.RateLimit())

	// Integration domain (OAuth lifecycle + token vault)
	repo := integrationRepo.New(srv.postgresDB, srv.l)
	intUC := integrationUC.New(srv.l, repo, srv.encrypter, srv.oauthFlow, srv.gcalClient)
	intHandler := integrationHTTP.New(srv.l, intUC)
	integrationHTTP.RegisterRoutes(api.Group("/integrations"), intHandler, mw)
	srv.l.Infof(ctx, "Integration domain registered")

	// Calendar domain (aggregation + event mutations)
	calUC := calendarUC.New(srv.l, intUC, srv.gcalClient, srv.cfg.Aggregation.CalendarTimeout)
	calHandler := calendarHTTP.New(srv.l, calUC)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), calHandler, mw)
	srv.l.Infof(ctx, "Calendar domain registered")

	// Availability domain (slot suggestions over the aggregator)
	availUC := availabilityUC.New(srv.l, calUC)
	availHandler := availabilityHTTP.New(srv.l, availUC)
	availabilityHTTP.RegisterRoutes(api.Group("/availability"), availHandler, mw)
	srv.l.Infof(ctx, "Availability domain registered")

	return nil
}
