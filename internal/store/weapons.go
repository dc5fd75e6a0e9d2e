package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

func (s *Store) UpsertWeaponStat(ctx context.Context, w *models.WeaponStat) (*models.WeaponStat, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO weapon_stats (id, monthly_stat_id, weapon, custom_name, kills, headshots, shots_fired, hits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (monthly_stat_id, weapon) DO UPDATE SET
			custom_name = EXCLUDED.custom_name,
			kills = EXCLUDED.kills,
			headshots = EXCLUDED.headshots,
			shots_fired = EXCLUDED.shots_fired,
			hits = EXCLUDED.hits
		RETURNING id, monthly_stat_id, weapon, custom_name, kills, headshots, shots_fired, hits
	`, uuid.New(), w.MonthlyStatID, w.Weapon, w.CustomName, w.Kills, w.Headshots, w.ShotsFired, w.Hits)

	var out models.WeaponStat
	err := row.Scan(&out.ID, &out.MonthlyStatID, &out.Weapon, &out.CustomName,
		&out.Kills, &out.Headshots, &out.ShotsFired, &out.Hits)
	if err != nil {
		return nil, fmt.Errorf("upserting weapon stat: %w", err)
	}
	return &out, nil
}

func (s *Store) ListWeaponStats(ctx context.Context, monthlyStatID uuid.UUID) ([]models.WeaponStat, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, monthly_stat_id, weapon, custom_name, kills, headshots, shots_fired, hits
		FROM weapon_stats
		WHERE monthly_stat_id = $1
		ORDER BY kills DESC
	`, monthlyStatID)
	if err != nil {
		return nil, fmt.Errorf("listing weapon stats: %w", err)
	}
	defer rows.Close()

	stats := []models.WeaponStat{}
	for rows.Next() {
		var w models.WeaponStat
		if err := rows.Scan(&w.ID, &w.MonthlyStatID, &w.Weapon, &w.CustomName,
			&w.Kills, &w.Headshots, &w.ShotsFired, &w.Hits); err != nil {
			continue
		}
		stats = append(stats, w)
	}
	return stats, rows.Err()
}

// ListWeaponRollups sums a player's weapon counters across all months. The
// ratios are derived from the sums afterwards, never from per-month ratios.
func (s *Store) ListWeaponRollups(ctx context.Context, playerID uuid.UUID) ([]models.WeaponRollup, error) {
	rows, err := s.db.Query(ctx, `
		SELECT w.weapon,
		       SUM(w.kills) AS kills,
		       SUM(w.headshots) AS headshots,
		       SUM(w.shots_fired) AS shots_fired,
		       SUM(w.hits) AS hits
		FROM weapon_stats w
		JOIN monthly_stats m ON m.id = w.monthly_stat_id
		WHERE m.player_id = $1
		GROUP BY w.weapon
		ORDER BY kills DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing weapon rollups: %w", err)
	}
	defer rows.Close()

	rollups := []models.WeaponRollup{}
	for rows.Next() {
		var r models.WeaponRollup
		if err := rows.Scan(&r.Weapon, &r.Kills, &r.Headshots, &r.ShotsFired, &r.Hits); err != nil {
			continue
		}
		rollups = append(rollups, r)
	}
	return rollups, rows.Err()
}

func (s *Store) DeleteWeaponStat(ctx context.Context, monthlyStatID uuid.UUID, weapon string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM weapon_stats WHERE monthly_stat_id = $1 AND weapon = $2
	`, monthlyStatID, weapon)
	if err != nil {
		return fmt.Errorf("deleting weapon stat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
