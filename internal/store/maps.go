package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

func (s *Store) UpsertMapStat(ctx context.Context, m *models.MapStat) (*models.MapStat, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO map_stats (id, monthly_stat_id, map_name, matches_played, wins, kills, deaths, plants, defuses, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (monthly_stat_id, map_name) DO UPDATE SET
			matches_played = EXCLUDED.matches_played,
			wins = EXCLUDED.wins,
			kills = EXCLUDED.kills,
			deaths = EXCLUDED.deaths,
			plants = EXCLUDED.plants,
			defuses = EXCLUDED.defuses,
			notes = EXCLUDED.notes
		RETURNING id, monthly_stat_id, map_name, matches_played, wins, kills, deaths, plants, defuses, notes
	`, uuid.New(), m.MonthlyStatID, m.MapName, m.MatchesPlayed, m.Wins, m.Kills,
		m.Deaths, m.Plants, m.Defuses, m.Notes)

	var out models.MapStat
	err := row.Scan(&out.ID, &out.MonthlyStatID, &out.MapName, &out.MatchesPlayed,
		&out.Wins, &out.Kills, &out.Deaths, &out.Plants, &out.Defuses, &out.Notes)
	if err != nil {
		return nil, fmt.Errorf("upserting map stat: %w", err)
	}
	return &out, nil
}

func (s *Store) ListMapStats(ctx context.Context, monthlyStatID uuid.UUID) ([]models.MapStat, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, monthly_stat_id, map_name, matches_played, wins, kills, deaths, plants, defuses, notes
		FROM map_stats
		WHERE monthly_stat_id = $1
		ORDER BY matches_played DESC
	`, monthlyStatID)
	if err != nil {
		return nil, fmt.Errorf("listing map stats: %w", err)
	}
	defer rows.Close()

	stats := []models.MapStat{}
	for rows.Next() {
		var m models.MapStat
		if err := rows.Scan(&m.ID, &m.MonthlyStatID, &m.MapName, &m.MatchesPlayed,
			&m.Wins, &m.Kills, &m.Deaths, &m.Plants, &m.Defuses, &m.Notes); err != nil {
			continue
		}
		stats = append(stats, m)
	}
	return stats, rows.Err()
}

// ListMapRollups sums a player's map counters across all months.
func (s *Store) ListMapRollups(ctx context.Context, playerID uuid.UUID) ([]models.MapRollup, error) {
	rows, err := s.db.Query(ctx, `
		SELECT mp.map_name,
		       SUM(mp.matches_played) AS matches_played,
		       SUM(mp.wins) AS wins,
		       SUM(mp.kills) AS kills,
		       SUM(mp.deaths) AS deaths
		FROM map_stats mp
		JOIN monthly_stats m ON m.id = mp.monthly_stat_id
		WHERE m.player_id = $1
		GROUP BY mp.map_name
		ORDER BY matches_played DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing map rollups: %w", err)
	}
	defer rows.Close()

	rollups := []models.MapRollup{}
	for rows.Next() {
		var r models.MapRollup
		if err := rows.Scan(&r.MapName, &r.MatchesPlayed, &r.Wins, &r.Kills, &r.Deaths); err != nil {
			continue
		}
		rollups = append(rollups, r)
	}
	return rollups, rows.Err()
}

func (s *Store) DeleteMapStat(ctx context.Context, monthlyStatID uuid.UUID, mapName string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM map_stats WHERE monthly_stat_id = $1 AND map_name = $2
	`, monthlyStatID, mapName)
	if err != nil {
		return fmt.Errorf("deleting map stat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
