package analytics

import (
	"sort"

	"github.com/Kiran-Kowda/cba/internal/model"
)

// CountryMetrics 按国家聚合使用量，按 Questions 降序排列。
// Users 统计该国家不同提问时间（秒级展示格式）的个数，作为会话数的近似。
// 行先按国家名字母序聚齐、再做稳定排序，因此问题数相同的国家保持字母序。
func CountryMetrics(rows []model.QuestionRow) []model.CountryMetric {
	questions := make(map[string]int)
	sessions := make(map[string]map[string]struct{})

	for _, row := range rows {
		questions[row.Country]++
		if sessions[row.Country] == nil {
			sessions[row.Country] = make(map[string]struct{})
		}
		sessions[row.Country][model.FormatAskedAt(row.AskedAt)] = struct{}{}
	}

	countries := make([]string, 0, len(questions))
	for country := range questions {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	metrics := make([]model.CountryMetric, 0, len(countries))
	for _, country := range countries {
		metrics = append(metrics, model.CountryMetric{
			Country:   country,
			Questions: questions[country],
			Users:     len(sessions[country]),
		})
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Questions > metrics[j].Questions
	})
	return metrics
}
