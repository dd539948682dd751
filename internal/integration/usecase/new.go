package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"calendar-connect/internal/integration"
	"calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/encrypter"
	"calendar-connect/pkg/log"
)

// OAuthFlow is the provider token endpoint surface the vault needs.
type OAuthFlow interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Revoke(ctx context.Context, token string) error
}

// CalendarLister is the slice of the provider client used for the live
// calendar list.
type CalendarLister interface {
	ListCalendars(ctx context.Context, token string) ([]model.CalendarRef, error)
}

const defaultRefreshRetryDelay = 500 * time.Millisecond

// implUseCase is the private implementation of integration.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	enc       encrypter.Encrypter
	flow      OAuthFlow
	calendars CalendarLister

	// sf serializes refreshes per (user, provider) within the process;
	// the repository's conditional update covers other processes.
	sf         singleflight.Group
	retryDelay time.Duration
}

var _ integration.UseCase = (*implUseCase)(nil)

// New creates a new integration UseCase implementation.
func New(l log.Logger, repo repository.Repository, enc encrypter.Encrypter, flow OAuthFlow, calendars CalendarLister) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		enc:        enc,
		flow:       flow,
		calendars:  calendars,
		retryDelay: defaultRefreshRetryDelay,
	}
}
