package models

type SearchPlayerRequest struct {
	SteamID string `json:"steam_id" validate:"required,max=20"`
}

type UpsertMonthlyStatRequest struct {
	MatchesPlayed int64 `json:"matches_played" validate:"gte=0"`
	Kills         int64 `json:"kills" validate:"gte=0"`
	Deaths        int64 `json:"deaths" validate:"gte=0"`
	Assists       int64 `json:"assists" validate:"gte=0"`
	Headshots     int64 `json:"headshots" validate:"gte=0"`
	Wins          int64 `json:"wins" validate:"gte=0"`

	MVPs           int64   `json:"mvps" validate:"gte=0"`
	DamagePerRound float64 `json:"damage_per_round" validate:"gte=0"`
	UtilityDamage  int64   `json:"utility_damage" validate:"gte=0"`
	ClutchesWon    int64   `json:"clutches_won" validate:"gte=0"`
	Plants         int64   `json:"plants" validate:"gte=0"`
	Defuses        int64   `json:"defuses" validate:"gte=0"`

	Notes string `json:"notes"`
}

type UpsertWeaponStatRequest struct {
	CustomName string `json:"custom_name"`
	Kills      int64  `json:"kills" validate:"gte=0"`
	Headshots  int64  `json:"headshots" validate:"gte=0"`
	ShotsFired int64  `json:"shots_fired" validate:"gte=0"`
	Hits       int64  `json:"hits" validate:"gte=0"`
}

type UpsertMapStatRequest struct {
	MatchesPlayed int64  `json:"matches_played" validate:"gte=0"`
	Wins          int64  `json:"wins" validate:"gte=0"`
	Kills         int64  `json:"kills" validate:"gte=0"`
	Deaths        int64  `json:"deaths" validate:"gte=0"`
	Plants        int64  `json:"plants" validate:"gte=0"`
	Defuses       int64  `json:"defuses" validate:"gte=0"`
	Notes         string `json:"notes"`
}

type UpsertTeammateStatRequest struct {
	TeammateNickname string `json:"teammate_nickname"`
	MatchesTogether  int64  `json:"matches_together" validate:"gte=0"`
	WinsTogether     int64  `json:"wins_together" validate:"gte=0"`
}

type SyncResponse struct {
	Synced bool `json:"synced"`
}
