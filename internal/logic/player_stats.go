package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cs2hub/stats-api/internal/models"
)

type profileService struct {
	store  ProfileStore
	logger *zap.SugaredLogger
}

func NewProfileService(store ProfileStore, logger *zap.Logger) ProfileService {
	return &profileService{store: store, logger: logger.Sugar()}
}

// GetProfile loads the player row plus every dependent record set and derives
// all ratios. Monthly records are the backbone of the page and are required;
// weapon/map rollups and teammates degrade to empty on error.
func (s *profileService) GetProfile(ctx context.Context, steamID string) (*models.PlayerProfile, error) {
	player, err := s.store.GetPlayerBySteamID(ctx, steamID)
	if err != nil {
		return nil, err
	}

	profile := &models.PlayerProfile{
		Player:    player,
		Weapons:   []models.WeaponRollup{},
		Maps:      []models.MapRollup{},
		Teammates: []models.TeammateStat{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		monthly, err := s.store.ListMonthlyStats(ctx, player.ID)
		if err != nil {
			return fmt.Errorf("monthly stats: %w", err)
		}
		for i := range monthly {
			DeriveMonthly(&monthly[i])
		}
		profile.Monthly = monthly
		return nil
	})

	g.Go(func() error {
		weapons, err := s.store.ListWeaponRollups(ctx, player.ID)
		if err != nil {
			s.logger.Warnw("Failed to load weapon rollups", "steam_id", steamID, "error", err)
			return nil
		}
		for i := range weapons {
			DeriveWeaponRollup(&weapons[i])
		}
		profile.Weapons = weapons
		return nil
	})

	g.Go(func() error {
		maps, err := s.store.ListMapRollups(ctx, player.ID)
		if err != nil {
			s.logger.Warnw("Failed to load map rollups", "steam_id", steamID, "error", err)
			return nil
		}
		for i := range maps {
			DeriveMapRollup(&maps[i])
		}
		profile.Maps = maps
		return nil
	})

	g.Go(func() error {
		teammates, err := s.store.ListTeammateStats(ctx, player.ID)
		if err != nil {
			s.logger.Warnw("Failed to load teammates", "steam_id", steamID, "error", err)
			return nil
		}
		for i := range teammates {
			DeriveTeammate(&teammates[i])
		}
		profile.Teammates = teammates
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if profile.Monthly == nil {
		profile.Monthly = []models.MonthlyStat{}
	}

	profile.Overall = AggregateOverall(profile.Monthly)
	profile.Charts = BuildProfileCharts(profile.Monthly)

	return profile, nil
}
