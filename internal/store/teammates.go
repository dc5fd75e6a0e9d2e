package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

func (s *Store) UpsertTeammateStat(ctx context.Context, t *models.TeammateStat) (*models.TeammateStat, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO teammate_stats (id, player_id, teammate_steam_id, teammate_nickname, matches_together, wins_together)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (player_id, teammate_steam_id) DO UPDATE SET
			teammate_nickname = EXCLUDED.teammate_nickname,
			matches_together = EXCLUDED.matches_together,
			wins_together = EXCLUDED.wins_together
		RETURNING id, player_id, teammate_steam_id, teammate_nickname, matches_together, wins_together
	`, uuid.New(), t.PlayerID, t.TeammateSteamID, t.TeammateNickname,
		t.MatchesTogether, t.WinsTogether)

	var out models.TeammateStat
	err := row.Scan(&out.ID, &out.PlayerID, &out.TeammateSteamID,
		&out.TeammateNickname, &out.MatchesTogether, &out.WinsTogether)
	if err != nil {
		return nil, fmt.Errorf("upserting teammate stat: %w", err)
	}
	return &out, nil
}

func (s *Store) ListTeammateStats(ctx context.Context, playerID uuid.UUID) ([]models.TeammateStat, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, player_id, teammate_steam_id, teammate_nickname, matches_together, wins_together
		FROM teammate_stats
		WHERE player_id = $1
		ORDER BY matches_together DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing teammate stats: %w", err)
	}
	defer rows.Close()

	stats := []models.TeammateStat{}
	for rows.Next() {
		var t models.TeammateStat
		if err := rows.Scan(&t.ID, &t.PlayerID, &t.TeammateSteamID,
			&t.TeammateNickname, &t.MatchesTogether, &t.WinsTogether); err != nil {
			continue
		}
		stats = append(stats, t)
	}
	return stats, rows.Err()
}

func (s *Store) DeleteTeammateStat(ctx context.Context, playerID uuid.UUID, teammateSteamID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM teammate_stats WHERE player_id = $1 AND teammate_steam_id = $2
	`, playerID, teammateSteamID)
	if err != nil {
		return fmt.Errorf("deleting teammate stat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
