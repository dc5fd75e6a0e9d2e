package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

const playerColumns = `id, steam_id, nickname, avatar_url, profile_url, country_code,
	cs2_hours, is_public, last_steam_sync, created_at, updated_at`

// SteamProfile carries the fields written back by a successful Steam sync.
// CS2Hours is nil when the account hides its game list; the stored hours are
// kept in that case.
type SteamProfile struct {
	Nickname    string
	AvatarURL   string
	ProfileURL  string
	CountryCode string
	CS2Hours    *float64
}

// CreatePlayer inserts a new player known only by Steam ID. The Steam-sourced
// fields stay empty until the first sync succeeds.
func (s *Store) CreatePlayer(ctx context.Context, steamID string) (*models.Player, error) {
	id := uuid.New()
	row := s.db.QueryRow(ctx, `
		INSERT INTO players (id, steam_id)
		VALUES ($1, $2)
		RETURNING `+playerColumns,
		id, steamID)

	p, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	return p, nil
}

func (s *Store) GetPlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+playerColumns+` FROM players WHERE steam_id = $1
	`, steamID)

	p, err := scanPlayer(row)
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}
	return p, nil
}

// UpdateSteamProfile writes the fields fetched from Steam and stamps the sync
// time in one statement, so a failed fetch can never leave a half-written row.
func (s *Store) UpdateSteamProfile(ctx context.Context, steamID string, profile SteamProfile) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE players
		SET nickname = $2, avatar_url = $3, profile_url = $4, country_code = $5,
		    cs2_hours = COALESCE($6, cs2_hours), last_steam_sync = NOW(), updated_at = NOW()
		WHERE steam_id = $1
	`, steamID, profile.Nickname, profile.AvatarURL, profile.ProfileURL,
		profile.CountryCode, profile.CS2Hours)
	if err != nil {
		return fmt.Errorf("updating steam profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchSteamSync stamps the sync time without changing profile fields. Used
// when a fetch was suppressed by the cache window.
func (s *Store) TouchSteamSync(ctx context.Context, steamID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE players SET last_steam_sync = NOW(), updated_at = NOW() WHERE steam_id = $1
	`, steamID)
	if err != nil {
		return fmt.Errorf("touching steam sync: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlayer removes a player; monthly, weapon, map and teammate records go
// with it via ON DELETE CASCADE.
func (s *Store) DeletePlayer(ctx context.Context, steamID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM players WHERE steam_id = $1`, steamID)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListStaleSteamIDs returns players whose profile has not been synced since
// the cutoff (never-synced players first), for the background refresher.
func (s *Store) ListStaleSteamIDs(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT steam_id FROM players
		WHERE last_steam_sync IS NULL OR last_steam_sync < $1
		ORDER BY last_steam_sync ASC NULLS FIRST
		LIMIT $2
	`, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("listing stale players: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type playerRow interface {
	Scan(dest ...any) error
}

func scanPlayer(row playerRow) (*models.Player, error) {
	var p models.Player
	err := row.Scan(&p.ID, &p.SteamID, &p.Nickname, &p.AvatarURL, &p.ProfileURL,
		&p.CountryCode, &p.CS2Hours, &p.IsPublic, &p.LastSteamSync,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
