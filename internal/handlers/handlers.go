package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cs2hub/stats-api/internal/logic"
	"github.com/cs2hub/stats-api/internal/models"
	"github.com/cs2hub/stats-api/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// StatsStore is the slice of the storage layer the handlers write through.
type StatsStore interface {
	CreatePlayer(ctx context.Context, steamID string) (*models.Player, error)
	GetPlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error)
	DeletePlayer(ctx context.Context, steamID string) error

	UpsertMonthlyStat(ctx context.Context, m *models.MonthlyStat) (*models.MonthlyStat, error)
	GetMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error)
	ListMonthlyStats(ctx context.Context, playerID uuid.UUID) ([]models.MonthlyStat, error)
	DeleteMonthlyStat(ctx context.Context, playerID uuid.UUID, year, month int) error

	UpsertWeaponStat(ctx context.Context, w *models.WeaponStat) (*models.WeaponStat, error)
	DeleteWeaponStat(ctx context.Context, monthlyStatID uuid.UUID, weapon string) error

	UpsertMapStat(ctx context.Context, m *models.MapStat) (*models.MapStat, error)
	DeleteMapStat(ctx context.Context, monthlyStatID uuid.UUID, mapName string) error

	UpsertTeammateStat(ctx context.Context, t *models.TeammateStat) (*models.TeammateStat, error)
	DeleteTeammateStat(ctx context.Context, playerID uuid.UUID, teammateSteamID string) error
}

// ProfileSyncer refreshes a player's Steam profile, best-effort.
type ProfileSyncer interface {
	Sync(ctx context.Context, steamID string) bool
}

type Config struct {
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	// Services
	Store      StatsStore
	Profile    logic.ProfileService
	Sync       ProfileSyncer
	AdminToken string
}

type Handler struct {
	pg         *pgxpool.Pool
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	store      StatsStore
	profile    logic.ProfileService
	sync       ProfileSyncer
	adminToken string
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:         cfg.Postgres,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		store:      cfg.Store,
		profile:    cfg.Profile,
		sync:       cfg.Sync,
		adminToken: cfg.AdminToken,
	}
}

var _ StatsStore = (*store.Store)(nil)
