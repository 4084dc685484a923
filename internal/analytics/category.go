package analytics

import (
	"fmt"
	"sort"

	"github.com/Kiran-Kowda/cba/internal/model"
)

// CategoryMetrics 统计各类别的出现次数与占比，按 Count 降序排列。
// 只输出实际出现过的类别；Percentage 为 "NN.NN%" 形式的字符串，
// 各行占比相加等于 100% ± 舍入误差。输入为空时返回空表。
func CategoryMetrics(categories []model.Category) []model.CategoryMetric {
	if len(categories) == 0 {
		return nil
	}

	counts := make(map[model.Category]int)
	for _, cat := range categories {
		counts[cat]++
	}

	names := make([]string, 0, len(counts))
	for cat := range counts {
		names = append(names, string(cat))
	}
	sort.Strings(names)

	total := len(categories)
	metrics := make([]model.CategoryMetric, 0, len(names))
	for _, name := range names {
		count := counts[model.Category(name)]
		metrics = append(metrics, model.CategoryMetric{
			Category:   model.Category(name),
			Count:      count,
			Percentage: fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100),
		})
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Count > metrics[j].Count
	})
	return metrics
}
