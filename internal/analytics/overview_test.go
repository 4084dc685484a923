package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kiran-Kowda/cba/internal/model"
)

func TestOverview_AveragesPresentScoresOnly(t *testing.T) {
	low, high := 0.5, 1.0
	rows := []model.QuestionRow{
		rowAt(t, "2024-03-15T10:00:00.000001+00:00", "India"),
		rowAt(t, "2024-03-15T11:00:00.000001+00:00", "Germany"),
		rowAt(t, "2024-03-16T10:00:00.000001+00:00", "India"),
	}
	rows[0].Score = &low
	rows[1].Score = &high
	// rows[2] 无评分，不参与均值

	stats := Overview(rows)
	require.Equal(t, 3, stats.TotalQuestions)
	require.Equal(t, 2, stats.UniqueCountries)
	require.Equal(t, 2, stats.ScoredQuestions)
	require.InDelta(t, 0.75, stats.AverageScore, 1e-9)
}

func TestOverview_Empty(t *testing.T) {
	stats := Overview(nil)
	require.Zero(t, stats.TotalQuestions)
	require.Zero(t, stats.UniqueCountries)
	require.Zero(t, stats.ScoredQuestions)
	require.Zero(t, stats.AverageScore)
}

func TestTopCountries_Summarizes(t *testing.T) {
	metrics := []model.CountryMetric{
		{Country: "India", Questions: 6, Users: 4},
		{Country: "Germany", Questions: 3, Users: 2},
		{Country: "France", Questions: 1, Users: 1},
	}

	overview := TopCountries(metrics)
	require.Equal(t, "India", overview.Top.Country)
	require.Equal(t, 6, overview.Top.Questions)
	require.Equal(t, 10, overview.TotalQuestions)
	require.Equal(t, 3, overview.Countries)
	require.InDelta(t, 10.0/3.0, overview.AveragePerCountry, 1e-9)
}

func TestTopCountries_Empty(t *testing.T) {
	overview := TopCountries(nil)
	require.Zero(t, overview.Countries)
	require.Zero(t, overview.TotalQuestions)
	require.Equal(t, "", overview.Top.Country)
}
