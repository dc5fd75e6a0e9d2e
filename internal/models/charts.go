package models

// SeriesPoint pairs a month label ("2025/3") with a value.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one labeled series for the profile page charts. The frontend
// decides how to render it (line vs bar); this service only ships the numbers.
type ChartSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// ProfileTotals are the summary numbers shown next to the charts. Ratios are
// computed from the summed counters, not averaged per month.
type ProfileTotals struct {
	Matches int64   `json:"matches"`
	Kills   int64   `json:"kills"`
	Deaths  int64   `json:"deaths"`
	Wins    int64   `json:"wins"`
	KD      float64 `json:"kd"`
	WinRate float64 `json:"win_rate"`
}

// ProfileCharts is the chart payload for a player profile.
type ProfileCharts struct {
	KDRatio ChartSeries   `json:"kd_ratio"`
	WinRate ChartSeries   `json:"win_rate"`
	Matches ChartSeries   `json:"matches"`
	Totals  ProfileTotals `json:"totals"`
}
