package logic

import (
	"context"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

// ProfileStore is the slice of the storage layer the profile service reads
// from. Defined here so tests can swap in function-field mocks.
type ProfileStore interface {
	GetPlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error)
	ListMonthlyStats(ctx context.Context, playerID uuid.UUID) ([]models.MonthlyStat, error)
	ListWeaponRollups(ctx context.Context, playerID uuid.UUID) ([]models.WeaponRollup, error)
	ListMapRollups(ctx context.Context, playerID uuid.UUID) ([]models.MapRollup, error)
	ListTeammateStats(ctx context.Context, playerID uuid.UUID) ([]models.TeammateStat, error)
}

// ProfileService assembles the full profile page payload for a player.
type ProfileService interface {
	GetProfile(ctx context.Context, steamID string) (*models.PlayerProfile, error)
}
