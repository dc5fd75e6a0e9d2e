package logic

import (
	"math"

	"github.com/cs2hub/stats-api/internal/models"
)

// Ratio returns num/den rounded to 2 decimals, or 0.0 when den is zero.
// Division by zero is a normal branch here, not an error: a player with no
// deaths has a K/D of 0, matching the stored-profile convention.
func Ratio(num, den int64) float64 {
	if den <= 0 {
		return 0.0
	}
	return roundTo(float64(num)/float64(den), 2)
}

// Percent returns num/den*100 rounded to 1 decimal, or 0.0 when den is zero.
// Values above 100 are possible with inconsistent manual entry and are not
// clamped.
func Percent(num, den int64) float64 {
	if den <= 0 {
		return 0.0
	}
	return roundTo(float64(num)/float64(den)*100, 1)
}

// roundTo rounds half away from zero (1/8 at 2 decimals is 0.13, not the
// banker's 0.12). Exact ties are the only inputs where the choice shows.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// DeriveMonthly fills the derived ratio fields on a monthly record.
func DeriveMonthly(m *models.MonthlyStat) {
	m.KDRatio = Ratio(m.Kills, m.Deaths)
	m.WinRate = Percent(m.Wins, m.MatchesPlayed)
	m.HeadshotPercent = Percent(m.Headshots, m.Kills)
	m.ADR = roundTo(m.DamagePerRound, 1)
}

// DeriveWeapon fills the derived ratio fields on a weapon record.
func DeriveWeapon(w *models.WeaponStat) {
	w.HeadshotPercent = Percent(w.Headshots, w.Kills)
	w.Accuracy = Percent(w.Hits, w.ShotsFired)
}

// DeriveWeaponRollup fills the derived ratio fields on a weapon rollup.
func DeriveWeaponRollup(w *models.WeaponRollup) {
	w.HeadshotPercent = Percent(w.Headshots, w.Kills)
	w.Accuracy = Percent(w.Hits, w.ShotsFired)
}

// DeriveMap fills the derived ratio fields on a map record.
func DeriveMap(m *models.MapStat) {
	m.WinRate = Percent(m.Wins, m.MatchesPlayed)
	m.KDRatio = Ratio(m.Kills, m.Deaths)
}

// DeriveMapRollup fills the derived ratio fields on a map rollup.
func DeriveMapRollup(m *models.MapRollup) {
	m.WinRate = Percent(m.Wins, m.MatchesPlayed)
	m.KDRatio = Ratio(m.Kills, m.Deaths)
}

// DeriveTeammate fills the derived ratio fields on a teammate record.
func DeriveTeammate(t *models.TeammateStat) {
	t.WinRateTogether = Percent(t.WinsTogether, t.MatchesTogether)
}

// AggregateOverall computes all-time stats from a player's monthly records.
// Raw counters are summed first and the ratio functions applied to the sums;
// averaging per-month ratios would weight a 2-match month the same as a
// 100-match month.
func AggregateOverall(monthly []models.MonthlyStat) models.OverallStats {
	var out models.OverallStats
	for i := range monthly {
		m := &monthly[i]
		out.TotalMatches += m.MatchesPlayed
		out.TotalKills += m.Kills
		out.TotalDeaths += m.Deaths
		out.TotalWins += m.Wins
		out.TotalHeadshots += m.Headshots

		if kd := Ratio(m.Kills, m.Deaths); kd > out.BestMonthKD {
			out.BestMonthKD = kd
		}
	}

	out.KDRatio = Ratio(out.TotalKills, out.TotalDeaths)
	out.WinRate = Percent(out.TotalWins, out.TotalMatches)
	out.HeadshotPercent = Percent(out.TotalHeadshots, out.TotalKills)
	return out
}
