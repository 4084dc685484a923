package classifier

import "github.com/Kiran-Kowda/cba/internal/model"

// ClassifyBatches 按固定大小分块地对全部问题做分类。
// 每个分块处理完后同步调用一次 onProgress（可以传 nil），
// 携带完成比例、累计处理数和累计分类结果；最后一次回调的 Fraction 恒为 1.0，
// 输入为空时不产生任何回调。每次调用相互独立，不保留跨调用状态。
// 分块只影响进度汇报，最终结果与逐条分类完全一致。
func (c *Classifier) ClassifyBatches(questions []string, onProgress func(model.BatchProgress)) []model.Category {
	total := len(questions)
	// 预分配到总长度，保证累计结果切片在整个过程中不换底层数组
	categories := make([]model.Category, 0, total)

	for start := 0; start < total; start += c.batchSize {
		end := start + c.batchSize
		if end > total {
			end = total
		}
		for _, q := range questions[start:end] {
			categories = append(categories, c.Classify(q))
		}

		if onProgress != nil {
			fraction := float64(start+c.batchSize) / float64(total)
			if fraction > 1.0 {
				fraction = 1.0
			}
			onProgress(model.BatchProgress{
				Fraction:   fraction,
				Processed:  len(categories),
				Categories: categories,
			})
		}
	}

	return categories
}
