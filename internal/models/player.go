package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is a CS2 player profile. The Steam-sourced fields (nickname, avatar,
// country, hours) are cached copies refreshed by the profile sync; steam_id is
// immutable after creation.
type Player struct {
	ID            uuid.UUID  `json:"id"`
	SteamID       string     `json:"steam_id"`
	Nickname      string     `json:"nickname"`
	AvatarURL     string     `json:"avatar_url"`
	ProfileURL    string     `json:"profile_url"`
	CountryCode   string     `json:"country_code"`
	CS2Hours      float64    `json:"cs2_hours"`
	IsPublic      bool       `json:"is_public"`
	LastSteamSync *time.Time `json:"last_steam_sync,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MonthlyStat holds one calendar month of manually entered counters for a
// player. Ratio fields are derived on read, never stored.
type MonthlyStat struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`

	MatchesPlayed int64 `json:"matches_played"`
	Kills         int64 `json:"kills"`
	Deaths        int64 `json:"deaths"`
	Assists       int64 `json:"assists"`
	Headshots     int64 `json:"headshots"`
	Wins          int64 `json:"wins"`

	MVPs           int64   `json:"mvps"`
	DamagePerRound float64 `json:"damage_per_round"`
	UtilityDamage  int64   `json:"utility_damage"`
	ClutchesWon    int64   `json:"clutches_won"`
	Plants         int64   `json:"plants"`
	Defuses        int64   `json:"defuses"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived
	KDRatio         float64 `json:"kd_ratio"`
	WinRate         float64 `json:"win_rate"`
	HeadshotPercent float64 `json:"headshot_percent"`
	ADR             float64 `json:"adr"`
}

// WeaponStat is a per-weapon breakdown attached to a monthly record.
type WeaponStat struct {
	ID            uuid.UUID `json:"id"`
	MonthlyStatID uuid.UUID `json:"monthly_stat_id"`
	Weapon        string    `json:"weapon"`
	CustomName    string    `json:"custom_name,omitempty"`

	Kills      int64 `json:"kills"`
	Headshots  int64 `json:"headshots"`
	ShotsFired int64 `json:"shots_fired"`
	Hits       int64 `json:"hits"`

	// Derived
	HeadshotPercent float64 `json:"headshot_percent"`
	Accuracy        float64 `json:"accuracy"`
}

// MapStat is a per-map breakdown attached to a monthly record.
type MapStat struct {
	ID            uuid.UUID `json:"id"`
	MonthlyStatID uuid.UUID `json:"monthly_stat_id"`
	MapName       string    `json:"map_name"`

	MatchesPlayed int64 `json:"matches_played"`
	Wins          int64 `json:"wins"`
	Kills         int64 `json:"kills"`
	Deaths        int64 `json:"deaths"`
	Plants        int64 `json:"plants"`
	Defuses       int64 `json:"defuses"`

	Notes string `json:"notes,omitempty"`

	// Derived
	WinRate float64 `json:"win_rate"`
	KDRatio float64 `json:"kd_ratio"`
}

// TeammateStat tracks matches played together with another Steam account.
// The relation is symmetric but stored one-directionally on the owning player.
type TeammateStat struct {
	ID               uuid.UUID `json:"id"`
	PlayerID         uuid.UUID `json:"player_id"`
	TeammateSteamID  string    `json:"teammate_steam_id"`
	TeammateNickname string    `json:"teammate_nickname,omitempty"`

	MatchesTogether int64 `json:"matches_together"`
	WinsTogether    int64 `json:"wins_together"`

	// Derived
	WinRateTogether float64 `json:"win_rate_together"`
}

// WeaponRollup is a weapon breakdown summed across all of a player's months.
type WeaponRollup struct {
	Weapon     string `json:"weapon"`
	Kills      int64  `json:"kills"`
	Headshots  int64  `json:"headshots"`
	ShotsFired int64  `json:"shots_fired"`
	Hits       int64  `json:"hits"`

	HeadshotPercent float64 `json:"headshot_percent"`
	Accuracy        float64 `json:"accuracy"`
}

// MapRollup is a map breakdown summed across all of a player's months.
type MapRollup struct {
	MapName       string `json:"map_name"`
	MatchesPlayed int64  `json:"matches_played"`
	Wins          int64  `json:"wins"`
	Kills         int64  `json:"kills"`
	Deaths        int64  `json:"deaths"`

	WinRate float64 `json:"win_rate"`
	KDRatio float64 `json:"kd_ratio"`
}

// OverallStats are the player's all-time aggregates, computed by summing raw
// monthly counters and applying the ratio functions to the sums.
type OverallStats struct {
	TotalMatches    int64   `json:"total_matches"`
	TotalKills      int64   `json:"total_kills"`
	TotalDeaths     int64   `json:"total_deaths"`
	TotalWins       int64   `json:"total_wins"`
	TotalHeadshots  int64   `json:"total_headshots"`
	KDRatio         float64 `json:"kd_ratio"`
	WinRate         float64 `json:"win_rate"`
	HeadshotPercent float64 `json:"headshot_percent"`
	BestMonthKD     float64 `json:"best_month_kd"`
}

// PlayerProfile is the full profile page payload.
type PlayerProfile struct {
	Player    *Player        `json:"player"`
	Overall   OverallStats   `json:"overall"`
	Monthly   []MonthlyStat  `json:"monthly"`
	Weapons   []WeaponRollup `json:"weapons"`
	Maps      []MapRollup    `json:"maps"`
	Teammates []TeammateStat `json:"teammates"`
	Charts    ProfileCharts  `json:"charts"`
}
