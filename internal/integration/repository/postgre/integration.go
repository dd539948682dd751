package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
)

const integrationColumns = `id, user_id, provider, access_token, refresh_token, token_expiry, selected_calendar_ids, last_sync_at, created_at, updated_at`

// GetIntegration retrieves a single Integration by the provided filters.
// Returns zero-value Integration (ID == "") when not found — no error.
func (r *implRepository) GetIntegration(ctx context.Context, opt repo.GetIntegrationOptions) (model.Integration, error) {
	var conds []string
	var args []any
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.Provider != "" {
		args = append(args, string(opt.Provider))
		conds = append(conds, fmt.Sprintf("provider = $%d", len(args)))
	}
	query := fmt.Sprintf("SELECT %s FROM integrations WHERE %s LIMIT 1",
		integrationColumns, strings.Join(conds, " AND "))

	integ, err := r.scanIntegration(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Integration{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetIntegration"), err)
		return model.Integration{}, repo.ErrFailedToGet
	}
	return integ, nil
}

// UpsertIntegration creates the (user, provider) row or replaces its token
// set on reconnect. The calendar selection survives a reconnect.
func (r *implRepository) UpsertIntegration(ctx context.Context, opt repo.UpsertIntegrationOptions) (model.Integration, error) {
	const query = `
		INSERT INTO integrations (id, user_id, provider, access_token, refresh_token, token_expiry, selected_calendar_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '[]', NOW(), NOW())
		ON CONFLICT (user_id, provider) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    token_expiry = EXCLUDED.token_expiry,
		    updated_at = NOW()
		RETURNING ` + integrationColumns

	integ, err := r.scanIntegration(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, string(opt.Provider),
		opt.AccessToken, opt.RefreshToken, opt.TokenExpiry,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertIntegration"), err)
		return model.Integration{}, repo.ErrFailedToInsert
	}
	return integ, nil
}

// UpdateTokens applies a refresh result only while PrevAccessToken is still
// the stored ciphertext. A false return means another writer won the race.
func (r *implRepository) UpdateTokens(ctx context.Context, opt repo.UpdateTokensOptions) (bool, error) {
	const query = `
		UPDATE integrations
		SET access_token = $1, refresh_token = $2, token_expiry = $3, updated_at = NOW()
		WHERE user_id = $4 AND provider = $5 AND access_token = $6`

	res, err := r.db.ExecContext(ctx, query,
		opt.AccessToken, opt.RefreshToken, opt.TokenExpiry,
		opt.UserID, string(opt.Provider), opt.PrevAccessToken,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTokens"), err)
		return false, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpdateTokens"), err)
		return false, repo.ErrFailedToUpdate
	}
	return affected == 1, nil
}

// UpdateCalendars replaces the selected calendar list.
func (r *implRepository) UpdateCalendars(ctx context.Context, opt repo.UpdateCalendarsOptions) (model.Integration, error) {
	ids, err := json.Marshal(opt.CalendarIDs)
	if err != nil {
		return model.Integration{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE integrations
		SET selected_calendar_ids = $1, updated_at = NOW()
		WHERE user_id = $2 AND provider = $3
		RETURNING ` + integrationColumns

	integ, scanErr := r.scanIntegration(r.db.QueryRowContext(ctx, query,
		string(ids), opt.UserID, string(opt.Provider),
	))
	if scanErr == sql.ErrNoRows {
		return model.Integration{}, nil
	}
	if scanErr != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCalendars"), scanErr)
		return model.Integration{}, repo.ErrFailedToUpdate
	}
	return integ, nil
}

// UpdateLastSync stamps a successful provider read.
func (r *implRepository) UpdateLastSync(ctx context.Context, userID string, provider model.Provider) error {
	const query = `UPDATE integrations SET last_sync_at = NOW() WHERE user_id = $1 AND provider = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, string(provider)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLastSync"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteIntegration removes the row for (user, provider).
func (r *implRepository) DeleteIntegration(ctx context.Context, userID string, provider model.Provider) error {
	const query = `DELETE FROM integrations WHERE user_id = $1 AND provider = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, string(provider)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIntegration"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanIntegration(row rowScanner) (model.Integration, error) {
	var (
		integ        model.Integration
		provider     string
		refreshToken sql.NullString
		selectedRaw  string
		lastSync     sql.NullTime
	)
	err := row.Scan(
		&integ.ID, &integ.UserID, &provider,
		&integ.AccessToken, &refreshToken, &integ.TokenExpiry,
		&selectedRaw, &lastSync, &integ.CreatedAt, &integ.UpdatedAt,
	)
	if err != nil {
		return model.Integration{}, err
	}

	integ.Provider = model.Provider(provider)
	if refreshToken.Valid {
		integ.RefreshToken = refreshToken.String
	}
	if lastSync.Valid {
		t := lastSync.Time
		integ.LastSyncAt = &t
	}
	if selectedRaw != "" {
		if err := json.Unmarshal([]byte(selectedRaw), &integ.SelectedCalendarIDs); err != nil {
			return model.Integration{}, err
		}
	}
	return integ, nil
}
