package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
)

// mockStatsStore implements StatsStore with overridable function fields.
type mockStatsStore struct {
	CreatePlayerFunc       func(ctx context.Context, steamID string) (*models.Player, error)
	GetPlayerBySteamIDFunc func(ctx context.Context, steamID string) (*models.Player, error)
	DeletePlayerFunc       func(ctx context.Context, steamID string) error

	UpsertMonthlyStatFunc func(ctx context.Context, m *models.MonthlyStat) (*models.MonthlyStat, error)
	GetMonthlyStatFunc    func(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error)
	ListMonthlyStatsFunc  func(ctx context.Context, playerID uuid.UUID) ([]models.MonthlyStat, error)
	DeleteMonthlyStatFunc func(ctx context.Context, playerID uuid.UUID, year, month int) error

	UpsertWeaponStatFunc func(ctx context.Context, w *models.WeaponStat) (*models.WeaponStat, error)
	DeleteWeaponStatFunc func(ctx context.Context, monthlyStatID uuid.UUID, weapon string) error

	UpsertMapStatFunc func(ctx context.Context, m *models.MapStat) (*models.MapStat, error)
	DeleteMapStatFunc func(ctx context.Context, monthlyStatID uuid.UUID, mapName string) error

	UpsertTeammateStatFunc func(ctx context.Context, t *models.TeammateStat) (*models.TeammateStat, error)
	DeleteTeammateStatFunc func(ctx context.Context, playerID uuid.UUID, teammateSteamID string) error
}

func (m *mockStatsStore) CreatePlayer(ctx context.Context, steamID string) (*models.Player, error) {
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, steamID)
	}
	return &models.Player{ID: uuid.New(), SteamID: steamID}, nil
}

func (m *mockStatsStore) GetPlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error) {
	if m.GetPlayerBySteamIDFunc != nil {
		return m.GetPlayerBySteamIDFunc(ctx, steamID)
	}
	return &models.Player{ID: uuid.New(), SteamID: steamID}, nil
}

func (m *mockStatsStore) DeletePlayer(ctx context.Context, steamID string) error {
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(ctx, steamID)
	}
	return nil
}

func (m *mockStatsStore) UpsertMonthlyStat(ctx context.Context, s *models.MonthlyStat) (*models.MonthlyStat, error) {
	if m.UpsertMonthlyStatFunc != nil {
		return m.UpsertMonthlyStatFunc(ctx, s)
	}
	out := *s
	out.ID = uuid.New()
	return &out, nil
}

func (m *mockStatsStore) GetMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error) {
	if m.GetMonthlyStatFunc != nil {
		return m.GetMonthlyStatFunc(ctx, playerID, year, month)
	}
	return &models.MonthlyStat{ID: uuid.New(), PlayerID: playerID, Year: year, Month: month}, nil
}

func (m *mockStatsStore) ListMonthlyStats(ctx context.Context, playerID uuid.UUID) ([]models.MonthlyStat, error) {
	if m.ListMonthlyStatsFunc != nil {
		return m.ListMonthlyStatsFunc(ctx, playerID)
	}
	return []models.MonthlyStat{}, nil
}

func (m *mockStatsStore) DeleteMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) error {
	if m.DeleteMonthlyStatFunc != nil {
		return m.DeleteMonthlyStatFunc(ctx, playerID, year, month)
	}
	return nil
}

func (m *mockStatsStore) UpsertWeaponStat(ctx context.Context, w *models.WeaponStat) (*models.WeaponStat, error) {
	if m.UpsertWeaponStatFunc != nil {
		return m.UpsertWeaponStatFunc(ctx, w)
	}
	out := *w
	out.ID = uuid.New()
	return &out, nil
}

func (m *mockStatsStore) DeleteWeaponStat(ctx context.Context, monthlyStatID uuid.UUID, weapon string) error {
	if m.DeleteWeaponStatFunc != nil {
		return m.DeleteWeaponStatFunc(ctx, monthlyStatID, weapon)
	}
	return nil
}

func (m *mockStatsStore) UpsertMapStat(ctx context.Context, s *models.MapStat) (*models.MapStat, error) {
	if m.UpsertMapStatFunc != nil {
		return m.UpsertMapStatFunc(ctx, s)
	}
	out := *s
	out.ID = uuid.New()
	return &out, nil
}

func (m *mockStatsStore) DeleteMapStat(ctx context.Context, monthlyStatID uuid.UUID, mapName string) error {
	if m.DeleteMapStatFunc != nil {
		return m.DeleteMapStatFunc(ctx, monthlyStatID, mapName)
	}
	return nil
}

func (m *mockStatsStore) UpsertTeammateStat(ctx context.Context, t *models.TeammateStat) (*models.TeammateStat, error) {
	if m.UpsertTeammateStatFunc != nil {
		return m.UpsertTeammateStatFunc(ctx, t)
	}
	out := *t
	out.ID = uuid.New()
	return &out, nil
}

func (m *mockStatsStore) DeleteTeammateStat(ctx context.Context, playerID uuid.UUID, teammateSteamID string) error {
	if m.DeleteTeammateStatFunc != nil {
		return m.DeleteTeammateStatFunc(ctx, playerID, teammateSteamID)
	}
	return nil
}

// mockProfileService implements logic.ProfileService.
type mockProfileService struct {
	GetProfileFunc func(ctx context.Context, steamID string) (*models.PlayerProfile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, steamID string) (*models.PlayerProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, steamID)
	}
	return &models.PlayerProfile{
		Player:    &models.Player{ID: uuid.New(), SteamID: steamID},
		Monthly:   []models.MonthlyStat{},
		Weapons:   []models.WeaponRollup{},
		Maps:      []models.MapRollup{},
		Teammates: []models.TeammateStat{},
	}, nil
}

// mockSyncer implements ProfileSyncer.
type mockSyncer struct {
	SyncFunc func(ctx context.Context, steamID string) bool
	calls    []string
}

func (m *mockSyncer) Sync(ctx context.Context, steamID string) bool {
	m.calls = append(m.calls, steamID)
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx, steamID)
	}
	return true
}
