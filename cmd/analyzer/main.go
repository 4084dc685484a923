// Package main 是应用程序的入口点。
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/Kiran-Kowda/cba/internal/classifier"
	"github.com/Kiran-Kowda/cba/internal/config"
	"github.com/Kiran-Kowda/cba/internal/export"
	"github.com/Kiran-Kowda/cba/internal/model"
	"github.com/Kiran-Kowda/cba/internal/repository"
	"github.com/Kiran-Kowda/cba/internal/service"
	"github.com/Kiran-Kowda/cba/pkg/log"
)

// defaultPreviewRows 终端预览问答表时的默认行数上限
const defaultPreviewRows = 20

func main() {
	configPath := flag.String("config", "./configs/config.yaml", "配置文件路径")
	outputDir := flag.String("out", "", "CSV 输出目录, 默认取配置中的 export.output_dir")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "用法: analyzer [-config 配置文件] [-out 输出目录] <导出文件.json>")
		os.Exit(2)
	}
	exportPath := flag.Arg(0)

	// 1. 初始化配置
	config.Init(*configPath)
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目

	// 3. 初始化 Repository 与 Service (依赖注入)
	sessionRepo := repository.NewSessionRepository()
	questionClassifier := classifier.New(cfg.Analyzer)
	analyzerService := service.NewAnalyzerService(sessionRepo, questionClassifier)

	// 4. 读取并载入导出文件
	raw, err := os.ReadFile(exportPath)
	if err != nil {
		log.Fatal("读取导出文件失败", err)
	}
	session, err := analyzerService.LoadExport(filepath.Base(exportPath), raw)
	if err != nil {
		// 格式错误会拒绝整份文件，不展示部分结果
		log.Fatal("导出文件处理失败", err)
	}
	log.Infof("载入完成: %s, 共 %d 行提问", session.FileName, len(session.Rows))

	// 5. 运行全部分析：终端渲染 + CSV 导出
	dir := *outputDir
	if dir == "" {
		dir = cfg.Export.OutputDir
	}
	if err := runAnalysis(analyzerService, dir, previewLimit(cfg)); err != nil {
		log.Fatal("分析失败", err)
	}
}

// runAnalysis 依次产出全部报表并写出 CSV 文件。
// 分类分析失败时只跳过类别报表，之前产出的报表保持完整。
func runAnalysis(svc service.AnalyzerService, outputDir string, previewRows int) error {
	exporter, err := export.NewCSVExporter(outputDir, time.Now())
	if err != nil {
		return err
	}

	// 问答总表与快速统计
	table, err := svc.ConversationTable()
	if err != nil {
		return err
	}
	stats, err := svc.Overview()
	if err != nil {
		return err
	}
	renderOverview(stats)
	renderConversationPreview(table, previewRows)
	if _, err := exporter.WriteConversationDetails(table); err != nil {
		return err
	}

	// 每日使用量
	daily, err := svc.DailyMetrics()
	if err != nil {
		return err
	}
	renderDaily(daily)
	if _, err := exporter.WriteDailyMetrics(daily); err != nil {
		return err
	}

	// 国家使用量
	countries, err := svc.CountryMetrics()
	if err != nil {
		return err
	}
	topCountries, err := svc.TopCountries()
	if err != nil {
		return err
	}
	renderCountries(countries, topCountries)
	if _, err := exporter.WriteCountryMetrics(countries); err != nil {
		return err
	}

	// 问题分类分析，分块进度打到日志
	total := len(table)
	report, err := svc.CategoryAnalysis(func(p model.BatchProgress) {
		log.Infof("[CategoryAnalysis] 分类进度 %d/%d (%.0f%%)", p.Processed, total, p.Fraction*100)
	})
	if err != nil {
		log.Error("分类分析失败, 跳过类别报表", err)
		return nil
	}
	renderCategories(report)
	if _, err := exporter.WriteCategorySummary(report.Metrics); err != nil {
		return err
	}
	if _, err := exporter.WriteQuestionDetails(report.Details); err != nil {
		return err
	}

	return nil
}

// renderOverview 打印问答表顶部的快速统计。
func renderOverview(stats model.OverviewStats) {
	fmt.Println()
	fmt.Println("== 快速统计 ==")
	fmt.Printf("总提问数: %d\n", stats.TotalQuestions)
	fmt.Printf("覆盖国家数: %d\n", stats.UniqueCountries)
	if stats.ScoredQuestions > 0 {
		fmt.Printf("平均回答评分: %.2f\n", stats.AverageScore)
	}
}

// renderConversationPreview 打印问答明细的前若干行。
func renderConversationPreview(rows []model.QuestionRow, limit int) {
	fmt.Println()
	fmt.Println("== 问答明细 ==")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "S.No\tAsked at\tCountry\tUser Question\tScore")
	for i, row := range rows {
		if i >= limit {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			row.Seq, model.DisplayTime(row.AskedAt), row.Country, truncate(row.Question, 60), row.ScoreDisplay())
	}
	_ = w.Flush()
	if len(rows) > limit {
		fmt.Printf("（其余 %d 行见导出的 CSV）\n", len(rows)-limit)
	}
}

// renderDaily 打印每日使用量表。
func renderDaily(metrics []model.DailyMetric) {
	fmt.Println()
	fmt.Println("== 每日使用量 ==")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tQuestions\tUsers")
	for _, m := range metrics {
		fmt.Fprintf(w, "%s\t%d\t%d\n", m.Date.Format("2006-01-02"), m.Questions, m.Users)
	}
	_ = w.Flush()
}

// renderCountries 打印国家概览与国家使用量表。
func renderCountries(metrics []model.CountryMetric, overview model.CountryOverview) {
	fmt.Println()
	fmt.Println("== 国家使用量 ==")
	if overview.Countries > 0 {
		fmt.Printf("最活跃国家: %s (%d 个问题)\n", overview.Top.Country, overview.Top.Questions)
		fmt.Printf("总提问数: %d, 覆盖 %d 个国家\n", overview.TotalQuestions, overview.Countries)
		fmt.Printf("平均每国提问数: %.1f\n", overview.AveragePerCountry)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Country\tQuestions\tUsers")
	for _, m := range metrics {
		fmt.Fprintf(w, "%s\t%d\t%d\n", m.Country, m.Questions, m.Users)
	}
	_ = w.Flush()
}

// renderCategories 打印类别统计表。
func renderCategories(report *model.CategoryReport) {
	fmt.Println()
	fmt.Println("== 问题分类 ==")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Category\tCount\tPercentage")
	for _, m := range report.Metrics {
		fmt.Fprintf(w, "%s\t%d\t%s\n", m.Category, m.Count, m.Percentage)
	}
	_ = w.Flush()
}

// previewLimit 返回终端预览的行数上限
func previewLimit(cfg config.Config) int {
	if cfg.Export.PreviewRows > 0 {
		return cfg.Export.PreviewRows
	}
	return defaultPreviewRows
}

// truncate 截断过长的问题文本用于终端预览
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
