package analytics

import "github.com/Kiran-Kowda/cba/internal/model"

// Overview 汇总展示表顶部的快速统计：
// 总提问数、不同国家数，以及有评分的行的平均分。
func Overview(rows []model.QuestionRow) model.OverviewStats {
	stats := model.OverviewStats{TotalQuestions: len(rows)}

	countries := make(map[string]struct{})
	var scoreSum float64
	for _, row := range rows {
		countries[row.Country] = struct{}{}
		if row.Score != nil {
			scoreSum += *row.Score
			stats.ScoredQuestions++
		}
	}
	stats.UniqueCountries = len(countries)
	if stats.ScoredQuestions > 0 {
		stats.AverageScore = scoreSum / float64(stats.ScoredQuestions)
	}
	return stats
}

// TopCountries 汇总国家分析页顶部的概览。
// 输入应当是 CountryMetrics 的产出（已按问题数降序），取首行作为最活跃国家。
func TopCountries(metrics []model.CountryMetric) model.CountryOverview {
	if len(metrics) == 0 {
		return model.CountryOverview{}
	}

	overview := model.CountryOverview{
		Top:       metrics[0],
		Countries: len(metrics),
	}
	for _, m := range metrics {
		overview.TotalQuestions += m.Questions
	}
	overview.AveragePerCountry = float64(overview.TotalQuestions) / float64(len(metrics))
	return overview
}
