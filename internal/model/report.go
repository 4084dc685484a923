package model

import (
	"strconv"
	"time"
)

// Category 是问题分类器输出的类别标签，取值固定为下面六种之一。
type Category string

const (
	CategoryBrandedDefinition Category = "What is / Define (Branded)"
	CategoryBrandedHowTo      Category = "FAQ / How to (Branded)"
	CategoryBranded           Category = "Branded"
	CategoryDefinition        Category = "What is / Define (Non branded)"
	CategoryHowTo             Category = "FAQ / How to Type (Non branded)"
	CategoryOthers            Category = "Others"
)

// 评分缺失时的展示占位符
const scoreMissingDisplay = "N/A"

// QuestionRow 是会话拍平后的一行问答记录，每条用户消息对应一行。
// Answer 和 Score 取自同一会话中最后一条 assistant 文本消息；
// 会话没有 assistant 回复时 Answer 为 nil，评分展示为占位符。
type QuestionRow struct {
	Seq      int // 展示序号，从 1 开始连续编号
	AskedAt  time.Time
	Country  string
	Question string
	Answer   *string
	Score    *float64
}

// AnswerDisplay 返回回答的展示文本，缺失时为空串。
func (r QuestionRow) AnswerDisplay() string {
	if r.Answer == nil {
		return ""
	}
	return *r.Answer
}

// ScoreDisplay 返回评分的展示文本，缺失时为 "N/A"。
func (r QuestionRow) ScoreDisplay() string {
	if r.Score == nil {
		return scoreMissingDisplay
	}
	return strconv.FormatFloat(*r.Score, 'g', -1, 64)
}

// DailyMetric 是按天聚合的使用量。
// Users 统计的是当天出现过的不同国家数，沿用原始报表的口径。
type DailyMetric struct {
	Date      time.Time // 截断到日
	Questions int
	Users     int
}

// CountryMetric 是按国家聚合的使用量。
// Users 统计的是该国家不同提问时间（秒级展示格式）的个数，作为会话数的近似。
type CountryMetric struct {
	Country   string
	Questions int
	Users     int
}

// CategoryMetric 是单个类别的统计行，Percentage 为 "NN.NN%" 形式的字符串。
type CategoryMetric struct {
	Category   Category
	Count      int
	Percentage string
}

// QuestionDetail 是逐条问题的分类明细行，顺序与展示表一致。
type QuestionDetail struct {
	Seq      int
	Question string
	Category Category
}

// CategoryReport 是一次分类分析的完整产出。
type CategoryReport struct {
	Metrics []CategoryMetric
	Details []QuestionDetail
}

// OverviewStats 是展示表顶部的快速统计。
// ScoredQuestions 记录参与均值计算的行数，便于区分"均值为零"和"没有评分"。
type OverviewStats struct {
	TotalQuestions  int
	UniqueCountries int
	AverageScore    float64
	ScoredQuestions int
}

// CountryOverview 是国家分析页顶部的概览数据。
type CountryOverview struct {
	Top               CountryMetric // 提问量最高的国家
	TotalQuestions    int
	Countries         int
	AveragePerCountry float64
}

// BatchProgress 描述批量分类过程中单个分块完成后的进度快照。
type BatchProgress struct {
	Fraction   float64    // 完成比例，最后一个分块恒为 1.0
	Processed  int        // 累计已处理的问题数
	Categories []Category // 截至当前分块的累计分类结果，只增不改
}

// AnalysisSession 保存一次上传的拍平结果和按需计算的派生表缓存。
// 以文件内容的 MD5 作为会话标识，同一份文件重复载入时直接复用缓存。
type AnalysisSession struct {
	DocMD5   string
	FileName string
	LoadedAt time.Time

	// Rows 为展示顺序（提问时间倒序、重新编号）下的问答行。
	Rows []QuestionRow

	// 惰性计算的派生表缓存，nil 表示尚未计算。
	Daily     []DailyMetric
	Countries []CountryMetric
	Report    *CategoryReport
}
