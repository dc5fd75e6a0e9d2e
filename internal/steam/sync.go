package steam

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cs2hub/stats-api/internal/store"
)

const cacheKeyPrefix = "steam_profile:"

// Cache marks a Steam ID as recently synced. Only the flag is cached, not the
// payload: a hit means the stored profile is fresh enough to skip the fetch.
type Cache interface {
	Get(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, ttl time.Duration) error
}

// RedisCache implements Cache on top of a Redis connection.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (bool, error) {
	_, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Set(ctx, key, "1", ttl).Err()
}

// SteamAPI is the slice of Client the sync service uses.
type SteamAPI interface {
	GetProfileSummary(ctx context.Context, steamID string) (*ProfileSummary, error)
	GetCS2Hours(ctx context.Context, steamID string) (float64, bool, error)
}

// ProfileWriter is the slice of the store the sync service writes through.
type ProfileWriter interface {
	UpdateSteamProfile(ctx context.Context, steamID string, profile store.SteamProfile) error
	TouchSteamSync(ctx context.Context, steamID string) error
}

// SyncService refreshes stored player profiles from the Steam Web API.
type SyncService struct {
	api    SteamAPI
	store  ProfileWriter
	cache  Cache
	ttl    time.Duration
	logger *zap.SugaredLogger

	mu       sync.Mutex
	inFlight map[string]*identityLock
}

// identityLock serializes syncs for one Steam ID. Refcounted so the entry can
// be dropped from the map once the last holder releases it.
type identityLock struct {
	mu   sync.Mutex
	refs int
}

func NewSyncService(api SteamAPI, st ProfileWriter, cache Cache, ttl time.Duration, logger *zap.Logger) *SyncService {
	return &SyncService{
		api:      api,
		store:    st,
		cache:    cache,
		ttl:      ttl,
		logger:   logger.Sugar(),
		inFlight: make(map[string]*identityLock),
	}
}

// Sync refreshes one player's Steam profile. It returns true when the stored
// record is known fresh, either because the fetch succeeded or because a
// recent sync is still within the cache TTL. Any failure logs a warning and
// returns false; the stored record is never touched on failure.
func (s *SyncService) Sync(ctx context.Context, steamID string) bool {
	lock := s.acquire(steamID)
	defer s.release(steamID, lock)

	key := cacheKeyPrefix + steamID

	fresh, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnw("Steam sync cache lookup failed", "steam_id", steamID, "error", err)
	} else if fresh {
		if err := s.store.TouchSteamSync(ctx, steamID); err != nil {
			s.logger.Warnw("Failed to stamp sync time", "steam_id", steamID, "error", err)
		}
		return true
	}

	summary, err := s.api.GetProfileSummary(ctx, steamID)
	if err != nil {
		s.logger.Warnw("Steam profile fetch failed", "steam_id", steamID, "error", err)
		return false
	}

	hours, owned, err := s.api.GetCS2Hours(ctx, steamID)
	if err != nil {
		s.logger.Warnw("Steam playtime fetch failed", "steam_id", steamID, "error", err)
		return false
	}

	profile := store.SteamProfile{
		Nickname:    summary.Nickname,
		AvatarURL:   summary.AvatarURL,
		ProfileURL:  summary.ProfileURL,
		CountryCode: summary.CountryCode,
	}
	if owned {
		profile.CS2Hours = &hours
	} else {
		// A hidden game list keeps whatever hours were synced before.
		s.logger.Infow("Account does not expose CS2 playtime", "steam_id", steamID)
	}
	if err := s.store.UpdateSteamProfile(ctx, steamID, profile); err != nil {
		s.logger.Warnw("Failed to store synced profile", "steam_id", steamID, "error", err)
		return false
	}

	if err := s.cache.Set(ctx, key, s.ttl); err != nil {
		s.logger.Warnw("Failed to cache sync flag", "steam_id", steamID, "error", err)
	}

	s.logger.Infow("Synced Steam profile", "steam_id", steamID, "nickname", summary.Nickname)
	return true
}

// acquire takes the per-identity lock so concurrent requests for the same
// player make one upstream call, not two.
func (s *SyncService) acquire(steamID string) *identityLock {
	s.mu.Lock()
	lock, ok := s.inFlight[steamID]
	if !ok {
		lock = &identityLock{}
		s.inFlight[steamID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// release drops the map entry once the last holder lets go, so the map stays
// bounded by the number of in-flight syncs rather than distinct IDs seen.
func (s *SyncService) release(steamID string, lock *identityLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.inFlight, steamID)
	}
	s.mu.Unlock()
}
