package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

const monthlyColumns = `id, player_id, year, month, matches_played, kills, deaths, assists,
	headshots, wins, mvps, damage_per_round, utility_damage, clutches_won,
	plants, defuses, notes, created_at, updated_at`

// UpsertMonthlyStat inserts or replaces the record for (player, year, month).
// The admin back-office edits whole months at a time, so the counters are
// overwritten rather than merged.
func (s *Store) UpsertMonthlyStat(ctx context.Context, m *models.MonthlyStat) (*models.MonthlyStat, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO monthly_stats (
			id, player_id, year, month, matches_played, kills, deaths, assists,
			headshots, wins, mvps, damage_per_round, utility_damage, clutches_won,
			plants, defuses, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (player_id, year, month) DO UPDATE SET
			matches_played = EXCLUDED.matches_played,
			kills = EXCLUDED.kills,
			deaths = EXCLUDED.deaths,
			assists = EXCLUDED.assists,
			headshots = EXCLUDED.headshots,
			wins = EXCLUDED.wins,
			mvps = EXCLUDED.mvps,
			damage_per_round = EXCLUDED.damage_per_round,
			utility_damage = EXCLUDED.utility_damage,
			clutches_won = EXCLUDED.clutches_won,
			plants = EXCLUDED.plants,
			defuses = EXCLUDED.defuses,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING `+monthlyColumns,
		uuid.New(), m.PlayerID, m.Year, m.Month, m.MatchesPlayed, m.Kills, m.Deaths,
		m.Assists, m.Headshots, m.Wins, m.MVPs, m.DamagePerRound, m.UtilityDamage,
		m.ClutchesWon, m.Plants, m.Defuses, m.Notes)

	out, err := scanMonthlyStat(row)
	if err != nil {
		return nil, fmt.Errorf("upserting monthly stat: %w", err)
	}
	return out, nil
}

func (s *Store) GetMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+monthlyColumns+` FROM monthly_stats
		WHERE player_id = $1 AND year = $2 AND month = $3
	`, playerID, year, month)

	m, err := scanMonthlyStat(row)
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}
	return m, nil
}

// ListMonthlyStats returns a player's records in chronological order, the
// order the presentation adapter expects.
func (s *Store) ListMonthlyStats(ctx context.Context, playerID uuid.UUID) ([]models.MonthlyStat, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+monthlyColumns+` FROM monthly_stats
		WHERE player_id = $1
		ORDER BY year ASC, month ASC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing monthly stats: %w", err)
	}
	defer rows.Close()

	stats := []models.MonthlyStat{}
	for rows.Next() {
		m, err := scanMonthlyStat(rows)
		if err != nil {
			s.logger.Warnw("Failed to scan monthly stat", "error", err)
			continue
		}
		stats = append(stats, *m)
	}
	return stats, rows.Err()
}

func (s *Store) DeleteMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM monthly_stats WHERE player_id = $1 AND year = $2 AND month = $3
	`, playerID, year, month)
	if err != nil {
		return fmt.Errorf("deleting monthly stat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMonthlyStat(row playerRow) (*models.MonthlyStat, error) {
	var m models.MonthlyStat
	err := row.Scan(&m.ID, &m.PlayerID, &m.Year, &m.Month, &m.MatchesPlayed,
		&m.Kills, &m.Deaths, &m.Assists, &m.Headshots, &m.Wins, &m.MVPs,
		&m.DamagePerRound, &m.UtilityDamage, &m.ClutchesWon, &m.Plants,
		&m.Defuses, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
