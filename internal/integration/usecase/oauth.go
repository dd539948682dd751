package usecase

import (
	"context"

	"calendar-connect/internal/integration"
	repo "calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
)

// Connect starts the authorization-code flow. The state value is owned by
// the upstream session layer; the vault treats it as opaque.
func (uc *implUseCase) Connect(ctx context.Context, state string) integration.ConnectOutput {
	return integration.ConnectOutput{AuthURL: uc.flow.AuthCodeURL(state)}
}

// HandleCallback finishes the flow: exchanges the code and upserts the
// Integration with encrypted tokens.
func (uc *implUseCase) HandleCallback(ctx context.Context, userID string, input integration.CallbackInput) error {
	if input.Code == "" {
		return integration.ErrMissingCode
	}

	token, err := uc.flow.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback exchange: %v", err)
		return integration.ErrProviderUnavailable
	}

	encAccess, err := uc.enc.Encrypt(token.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback encrypt: %v", err)
		return err
	}

	encRefresh := ""
	if token.RefreshToken != "" {
		if encRefresh, err = uc.enc.Encrypt(token.RefreshToken); err != nil {
			uc.l.Errorf(ctx, "uc.HandleCallback encrypt refresh: %v", err)
			return err
		}
	} else {
		// Consent is forced, so a missing refresh token only happens on a
		// re-connect where the stored one is still usable.
		existing, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
			UserID:   userID,
			Provider: model.ProviderGoogle,
		})
		if err != nil {
			return err
		}
		if existing.RefreshToken == "" {
			return integration.ErrMissingRefreshToken
		}
		encRefresh = existing.RefreshToken
	}

	if _, err := uc.repo.UpsertIntegration(ctx, repo.UpsertIntegrationOptions{
		UserID:       userID,
		Provider:     model.ProviderGoogle,
		AccessToken:  encAccess,
		RefreshToken: encRefresh,
		TokenExpiry:  token.Expiry.UTC(),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback upsert: %v", err)
		return err
	}

	uc.l.Infof(ctx, "calendar integration connected for user %s", userID)
	return nil
}

// Revoke best-effort notifies the provider, then deletes the local row
// regardless of the remote outcome.
func (uc *implUseCase) Revoke(ctx context.Context, userID string) error {
	integ, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		return err
	}
	if integ.ID == "" {
		return integration.ErrNotConnected
	}

	// Revoking the refresh token invalidates the whole grant; fall back to
	// the access token when no refresh token is stored.
	remote := integ.RefreshToken
	if remote == "" {
		remote = integ.AccessToken
	}
	if plain, decErr := uc.enc.Decrypt(remote); decErr == nil {
		if revErr := uc.flow.Revoke(ctx, plain); revErr != nil {
			uc.l.Warnf(ctx, "uc.Revoke remote revoke failed: %v", revErr)
		}
	} else {
		uc.l.Warnf(ctx, "uc.Revoke decrypt: %v", decErr)
	}

	if err := uc.repo.DeleteIntegration(ctx, userID, model.ProviderGoogle); err != nil {
		uc.l.Errorf(ctx, "uc.Revoke delete: %v", err)
		return err
	}
	return nil
}
