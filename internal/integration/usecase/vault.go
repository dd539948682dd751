package usecase

import (
	"context"
	"time"

	"calendar-connect/internal/integration"
	repo "calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/googleauth"
)

// freshnessWindow is the minimum remaining validity a returned token must
// have. Tokens expiring sooner are refreshed before being handed out.
const freshnessWindow = 5 * time.Minute

// GetValidAccessToken returns a plaintext access token valid for at least
// the freshness window.
func (uc *implUseCase) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	integ, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetValidAccessToken GetIntegration: %v", err)
		return "", err
	}
	if integ.ID == "" {
		return "", integration.ErrNotConnected
	}

	if time.Until(integ.TokenExpiry) >= freshnessWindow {
		token, err := uc.enc.Decrypt(integ.AccessToken)
		if err != nil {
			uc.l.Errorf(ctx, "uc.GetValidAccessToken decrypt: %v", err)
			return "", err
		}
		return token, nil
	}

	return uc.refresh(ctx, userID)
}

// ForceRefresh refreshes immediately, ignoring the stored expiry. Callers
// use it after the provider rejects a token that looked valid locally.
func (uc *implUseCase) ForceRefresh(ctx context.Context, userID string) (string, error) {
	return uc.refresh(ctx, userID)
}

// refresh collapses concurrent same-key refreshes into one flight.
func (uc *implUseCase) refresh(ctx context.Context, userID string) (string, error) {
	key := userID + "|" + string(model.ProviderGoogle)
	v, err, _ := uc.sf.Do(key, func() (any, error) {
		return uc.doRefresh(ctx, userID)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// doRefresh exchanges the stored refresh token for a fresh access token and
// persists the result atomically. Invalid-grant failures delete the
// Integration: no partial or stale token state may be left behind.
func (uc *implUseCase) doRefresh(ctx context.Context, userID string) (string, error) {
	integ, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.refresh GetIntegration: %v", err)
		return "", err
	}
	if integ.ID == "" {
		return "", integration.ErrNotConnected
	}
	if integ.RefreshToken == "" {
		// Nothing to refresh with; the connection is dead.
		uc.dropIntegration(ctx, userID)
		return "", integration.ErrAuthExpired
	}

	refreshPlain, err := uc.enc.Decrypt(integ.RefreshToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.refresh decrypt: %v", err)
		return "", err
	}

	token, err := uc.flow.Refresh(ctx, refreshPlain)
	if err != nil {
		if googleauth.IsInvalidGrant(err) {
			uc.l.Warnf(ctx, "uc.refresh invalid grant for user %s, dropping integration", userID)
			uc.dropIntegration(ctx, userID)
			return "", integration.ErrAuthExpired
		}

		// Transient failure: one retry before degrading.
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(uc.retryDelay):
		}
		token, err = uc.flow.Refresh(ctx, refreshPlain)
		if err != nil {
			if googleauth.IsInvalidGrant(err) {
				uc.dropIntegration(ctx, userID)
				return "", integration.ErrAuthExpired
			}
			uc.l.Errorf(ctx, "uc.refresh retry failed: %v", err)
			return "", integration.ErrProviderUnavailable
		}
	}

	encAccess, err := uc.enc.Encrypt(token.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.refresh encrypt: %v", err)
		return "", err
	}
	encRefresh := integ.RefreshToken
	if token.RefreshToken != "" && token.RefreshToken != refreshPlain {
		// Provider rotated the refresh token; persist the new one.
		if encRefresh, err = uc.enc.Encrypt(token.RefreshToken); err != nil {
			uc.l.Errorf(ctx, "uc.refresh encrypt rotated: %v", err)
			return "", err
		}
	}

	updated, err := uc.repo.UpdateTokens(ctx, repo.UpdateTokensOptions{
		UserID:          userID,
		Provider:        model.ProviderGoogle,
		PrevAccessToken: integ.AccessToken,
		AccessToken:     encAccess,
		RefreshToken:    encRefresh,
		TokenExpiry:     token.Expiry.UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.refresh UpdateTokens: %v", err)
		return "", err
	}
	if !updated {
		// Another writer refreshed first: use its result instead of
		// clobbering it with ours.
		current, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
			UserID:   userID,
			Provider: model.ProviderGoogle,
		})
		if err != nil {
			return "", err
		}
		if current.ID == "" {
			return "", integration.ErrAuthExpired
		}
		return uc.enc.Decrypt(current.AccessToken)
	}

	return token.AccessToken, nil
}

// SelectedCalendarIDs returns the user's calendar selection.
func (uc *implUseCase) SelectedCalendarIDs(ctx context.Context, userID string) ([]string, error) {
	integ, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		return nil, err
	}
	if integ.ID == "" {
		return nil, integration.ErrNotConnected
	}
	return integ.SelectedCalendarIDs, nil
}

// TouchLastSync stamps the last successful provider read. Best effort.
func (uc *implUseCase) TouchLastSync(ctx context.Context, userID string) {
	if err := uc.repo.UpdateLastSync(ctx, userID, model.ProviderGoogle); err != nil {
		uc.l.Warnf(ctx, "uc.TouchLastSync: %v", err)
	}
}

func (uc *implUseCase) dropIntegration(ctx context.Context, userID string) {
	if err := uc.repo.DeleteIntegration(ctx, userID, model.ProviderGoogle); err != nil {
		uc.l.Errorf(ctx, "uc.dropIntegration: %v", err)
	}
}
