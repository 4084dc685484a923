// Package export 负责把分析结果写出为带表头的本地 CSV 文件。
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Kiran-Kowda/cba/internal/model"
	"github.com/Kiran-Kowda/cba/pkg/log"
)

// 文件名里的导出时间戳格式，形如 20240315_102345
const stampLayout = "20060102_150405"

// 日期列的输出格式
const dateLayout = "2006-01-02"

// CSVExporter 把派生表写成 CSV 文件，文件名形如 <表名>_<导出时间戳>.csv。
// 同一个实例产出的所有文件共享同一个导出时间戳。
type CSVExporter struct {
	outputDir string
	stamp     string
}

// NewCSVExporter 创建一个新的 CSVExporter，输出目录不存在时先创建。
func NewCSVExporter(outputDir string, now time.Time) (*CSVExporter, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	return &CSVExporter{outputDir: outputDir, stamp: now.Format(stampLayout)}, nil
}

// WriteConversationDetails 写出完整问答表，返回文件路径。
func (e *CSVExporter) WriteConversationDetails(rows []model.QuestionRow) (string, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"S.No", "Asked at", "Country", "User Question", "Assistant Response", "Score"})
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Seq),
			model.FormatAskedAt(row.AskedAt),
			row.Country,
			row.Question,
			row.AnswerDisplay(),
			row.ScoreDisplay(),
		})
	}
	return e.writeFile("conversation_details", records)
}

// WriteDailyMetrics 写出按天聚合表，返回文件路径。
func (e *CSVExporter) WriteDailyMetrics(metrics []model.DailyMetric) (string, error) {
	records := make([][]string, 0, len(metrics)+1)
	records = append(records, []string{"Date", "Questions", "Users"})
	for _, m := range metrics {
		records = append(records, []string{
			m.Date.Format(dateLayout),
			strconv.Itoa(m.Questions),
			strconv.Itoa(m.Users),
		})
	}
	return e.writeFile("daily_metrics", records)
}

// WriteCountryMetrics 写出按国家聚合表，返回文件路径。
func (e *CSVExporter) WriteCountryMetrics(metrics []model.CountryMetric) (string, error) {
	records := make([][]string, 0, len(metrics)+1)
	records = append(records, []string{"Country", "Questions", "Users"})
	for _, m := range metrics {
		records = append(records, []string{
			m.Country,
			strconv.Itoa(m.Questions),
			strconv.Itoa(m.Users),
		})
	}
	return e.writeFile("country_metrics", records)
}

// WriteCategorySummary 写出类别统计表，返回文件路径。
func (e *CSVExporter) WriteCategorySummary(metrics []model.CategoryMetric) (string, error) {
	records := make([][]string, 0, len(metrics)+1)
	records = append(records, []string{"Category", "Count", "Percentage"})
	for _, m := range metrics {
		records = append(records, []string{
			string(m.Category),
			strconv.Itoa(m.Count),
			m.Percentage,
		})
	}
	return e.writeFile("category_summary", records)
}

// WriteQuestionDetails 写出逐条问题的分类明细表，返回文件路径。
func (e *CSVExporter) WriteQuestionDetails(details []model.QuestionDetail) (string, error) {
	records := make([][]string, 0, len(details)+1)
	records = append(records, []string{"S.No", "User Question", "Category"})
	for _, d := range details {
		records = append(records, []string{
			strconv.Itoa(d.Seq),
			d.Question,
			string(d.Category),
		})
	}
	return e.writeFile("question_details", records)
}

// writeFile 把记录写入 <kind>_<时间戳>.csv 并返回完整路径。
func (e *CSVExporter) writeFile(kind string, records [][]string) (string, error) {
	path := filepath.Join(e.outputDir, fmt.Sprintf("%s_%s.csv", kind, e.stamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("创建导出文件失败: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("写入 CSV 失败: %w", err)
	}

	log.Infof("[CSVExporter] 已写出 %s, 共 %d 行", path, len(records)-1)
	return path, nil
}
