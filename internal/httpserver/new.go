package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-connect/config"
	"calendar-connect/pkg/encrypter"
	"calendar-connect/pkg/gcalendar"
	"calendar-connect/pkg/googleauth"
	"calendar-connect/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Shared infrastructure handed to the domains
	postgresDB *sql.DB
	encrypter  encrypter.Encrypter
	oauthFlow  *googleauth.Flow
	gcalClient *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Config      *config.Config
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Encrypter  encrypter.Encrypter
	OAuthFlow  *googleauth.Flow
	GCalClient *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		cfg:         cfg.Config,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		encrypter:   cfg.Encrypter,
		oauthFlow:   cfg.OAuthFlow,
		gcalClient:  cfg.GCalClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.encrypter == nil {
		return errors.New("token encrypter is required")
	}
	if srv.oauthFlow == nil {
		return errors.New("oauth flow is required")
	}
	if srv.gcalClient == nil {
		return errors.New("calendar client is required")
	}
	return nil
}
