package logic

import (
	"fmt"

	"github.com/cs2hub/stats-api/internal/models"
)

// MonthLabel formats the x-axis label for a monthly record.
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%d/%d", year, month)
}

// BuildProfileCharts shapes an ordered (chronological) slice of monthly
// records into the three profile chart series plus summed totals. Chart
// rendering happens client-side; this only emits labeled numbers. An empty
// input yields empty, non-nil series and zero totals.
func BuildProfileCharts(monthly []models.MonthlyStat) models.ProfileCharts {
	charts := models.ProfileCharts{
		KDRatio: models.ChartSeries{Name: "K/D Ratio", Points: make([]models.SeriesPoint, 0, len(monthly))},
		WinRate: models.ChartSeries{Name: "Win Rate %", Points: make([]models.SeriesPoint, 0, len(monthly))},
		Matches: models.ChartSeries{Name: "Matches Played", Points: make([]models.SeriesPoint, 0, len(monthly))},
	}

	for i := range monthly {
		m := &monthly[i]
		label := MonthLabel(m.Year, m.Month)

		charts.KDRatio.Points = append(charts.KDRatio.Points, models.SeriesPoint{
			Label: label,
			Value: Ratio(m.Kills, m.Deaths),
		})
		charts.WinRate.Points = append(charts.WinRate.Points, models.SeriesPoint{
			Label: label,
			Value: Percent(m.Wins, m.MatchesPlayed),
		})
		charts.Matches.Points = append(charts.Matches.Points, models.SeriesPoint{
			Label: label,
			Value: float64(m.MatchesPlayed),
		})

		charts.Totals.Matches += m.MatchesPlayed
		charts.Totals.Kills += m.Kills
		charts.Totals.Deaths += m.Deaths
		charts.Totals.Wins += m.Wins
	}

	charts.Totals.KD = Ratio(charts.Totals.Kills, charts.Totals.Deaths)
	charts.Totals.WinRate = Percent(charts.Totals.Wins, charts.Totals.Matches)

	return charts
}
