// Package analytics 实现平铺问答行上的各类聚合统计。
// 所有聚合都是纯函数：从平铺行重新计算、产出独立的派生表，不修改输入。
package analytics

import (
	"sort"
	"time"

	"github.com/Kiran-Kowda/cba/internal/model"
)

// DailyMetrics 按自然日聚合使用量，日期升序。
// Questions 为当天的提问行数，Users 为当天出现过的不同国家数。
// 没有提问的日期不会出现在结果里（稀疏日期轴，补零由调用方自理）。
func DailyMetrics(rows []model.QuestionRow) []model.DailyMetric {
	questions := make(map[time.Time]int)
	countries := make(map[time.Time]map[string]struct{})

	for _, row := range rows {
		date := truncateToDate(row.AskedAt)
		questions[date]++
		if countries[date] == nil {
			countries[date] = make(map[string]struct{})
		}
		countries[date][row.Country] = struct{}{}
	}

	dates := make([]time.Time, 0, len(questions))
	for date := range questions {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	metrics := make([]model.DailyMetric, 0, len(dates))
	for _, date := range dates {
		metrics = append(metrics, model.DailyMetric{
			Date:      date,
			Questions: questions[date],
			Users:     len(countries[date]),
		})
	}
	return metrics
}

// truncateToDate 把时间截断到当天零点
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
