// Package service 包含了应用的业务逻辑层。
package service

import (
	"crypto/md5"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Kiran-Kowda/cba/internal/analytics"
	"github.com/Kiran-Kowda/cba/internal/classifier"
	"github.com/Kiran-Kowda/cba/internal/model"
	"github.com/Kiran-Kowda/cba/internal/pipeline"
	"github.com/Kiran-Kowda/cba/internal/repository"
	"github.com/Kiran-Kowda/cba/pkg/log"
)

// ErrNoSession 在尚未载入任何导出文件时由各查询方法返回。
var ErrNoSession = errors.New("尚未载入导出文件")

// AnalyzerService 接口定义了导出文件分析的业务操作。
// 所有查询方法都作用于最近一次成功载入的会话。
type AnalyzerService interface {
	// LoadExport 载入一份导出文件并建立分析会话。
	// 同一份内容（MD5 相同）重复载入时复用既有会话及其派生表缓存；
	// 格式错误会拒绝整份文件，不产出部分结果。
	LoadExport(fileName string, raw []byte) (*model.AnalysisSession, error)
	// ConversationTable 返回展示顺序（提问时间倒序、重新编号）的完整问答表。
	ConversationTable() ([]model.QuestionRow, error)
	// DailyMetrics 返回按天聚合的使用量，首次调用时计算并缓存在会话上。
	DailyMetrics() ([]model.DailyMetric, error)
	// CountryMetrics 返回按国家聚合的使用量，首次调用时计算并缓存在会话上。
	CountryMetrics() ([]model.CountryMetric, error)
	// CategoryAnalysis 对全部问题按展示顺序做批量分类并汇总。
	// onProgress 在每个分块完成后被同步调用（可以传 nil）；
	// 结果缓存在会话上，重复调用直接返回缓存、不再触发回调。
	CategoryAnalysis(onProgress func(model.BatchProgress)) (*model.CategoryReport, error)
	// Overview 返回问答表顶部的快速统计。
	Overview() (model.OverviewStats, error)
	// TopCountries 返回国家维度的概览统计。
	TopCountries() (model.CountryOverview, error)
}

type analyzerService struct {
	sessionRepo repository.SessionRepository
	classifier  *classifier.Classifier
}

// NewAnalyzerService 创建一个新的 AnalyzerService 实例。
func NewAnalyzerService(sessionRepo repository.SessionRepository, c *classifier.Classifier) AnalyzerService {
	return &analyzerService{sessionRepo: sessionRepo, classifier: c}
}

// LoadExport 载入导出文件：解析、拍平、按展示顺序整理并建立会话。
func (s *analyzerService) LoadExport(fileName string, raw []byte) (*model.AnalysisSession, error) {
	docMD5 := contentMD5(raw)
	log.Infof("[LoadExport] 开始载入导出文件, FileName: %s, DocMD5: %s, 大小: %d字节", fileName, docMD5, len(raw))

	// 1. 缓存检查：同一份内容直接复用既有会话
	if session, ok := s.sessionRepo.Find(docMD5); ok {
		log.Infof("[LoadExport] 命中会话缓存, 跳过重新解析, DocMD5: %s", docMD5)
		return session, nil
	}

	// 2. 解析并校验 JSON 结构
	export, err := pipeline.ParseExport(raw)
	if err != nil {
		log.Errorf("[LoadExport] 解析导出文件失败, FileName: %s, Error: %v", fileName, err)
		return nil, err
	}
	log.Infof("[LoadExport] 解析成功, 共 %d 条会话", len(export.Conversations))

	// 3. 拍平成逐问题的平铺行
	rows, err := pipeline.Flatten(export)
	if err != nil {
		log.Errorf("[LoadExport] 拍平会话失败, FileName: %s, Error: %v", fileName, err)
		return nil, err
	}
	log.Infof("[LoadExport] 拍平完成, 共 %d 行提问", len(rows))

	// 4. 整理为展示顺序并重新编号
	sortForDisplay(rows)

	// 5. 建立新会话，旧会话连同其派生表缓存一起失效
	session := &model.AnalysisSession{
		DocMD5:   docMD5,
		FileName: fileName,
		LoadedAt: time.Now(),
		Rows:     rows,
	}
	s.sessionRepo.Put(session)
	log.Infof("[LoadExport] 会话建立完成, DocMD5: %s", docMD5)
	return session, nil
}

// ConversationTable 返回展示顺序的完整问答表。
func (s *analyzerService) ConversationTable() ([]model.QuestionRow, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	return session.Rows, nil
}

// DailyMetrics 返回按天聚合的使用量。
func (s *analyzerService) DailyMetrics() ([]model.DailyMetric, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if session.Daily == nil {
		session.Daily = analytics.DailyMetrics(session.Rows)
	}
	return session.Daily, nil
}

// CountryMetrics 返回按国家聚合的使用量。
func (s *analyzerService) CountryMetrics() ([]model.CountryMetric, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if session.Countries == nil {
		session.Countries = analytics.CountryMetrics(session.Rows)
	}
	return session.Countries, nil
}

// CategoryAnalysis 批量分类全部问题并汇总结果。
func (s *analyzerService) CategoryAnalysis(onProgress func(model.BatchProgress)) (*model.CategoryReport, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if session.Report != nil {
		log.Infof("[CategoryAnalysis] 命中分类结果缓存, DocMD5: %s", session.DocMD5)
		return session.Report, nil
	}

	log.Infof("[CategoryAnalysis] 开始批量分类, 共 %d 个问题", len(session.Rows))

	// 分类跟随展示顺序，逐条明细与问答表逐行对应
	questions := make([]string, len(session.Rows))
	for i, row := range session.Rows {
		questions[i] = row.Question
	}
	categories := s.classifier.ClassifyBatches(questions, onProgress)

	details := make([]model.QuestionDetail, len(session.Rows))
	for i, row := range session.Rows {
		details[i] = model.QuestionDetail{Seq: row.Seq, Question: row.Question, Category: categories[i]}
	}

	session.Report = &model.CategoryReport{
		Metrics: analytics.CategoryMetrics(categories),
		Details: details,
	}
	log.Infof("[CategoryAnalysis] 分类完成, 产出 %d 个类别", len(session.Report.Metrics))
	return session.Report, nil
}

// Overview 返回问答表顶部的快速统计。
func (s *analyzerService) Overview() (model.OverviewStats, error) {
	session, err := s.currentSession()
	if err != nil {
		return model.OverviewStats{}, err
	}
	return analytics.Overview(session.Rows), nil
}

// TopCountries 返回国家维度的概览统计。
func (s *analyzerService) TopCountries() (model.CountryOverview, error) {
	metrics, err := s.CountryMetrics()
	if err != nil {
		return model.CountryOverview{}, err
	}
	return analytics.TopCountries(metrics), nil
}

// currentSession 返回当前会话，没有时返回 ErrNoSession。
func (s *analyzerService) currentSession() (*model.AnalysisSession, error) {
	session := s.sessionRepo.Current()
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// sortForDisplay 把平铺行按提问时间倒序稳定排列并从 1 开始重新编号。
// 同一时刻的行保持拍平产出的相对顺序。
func sortForDisplay(rows []model.QuestionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AskedAt.After(rows[j].AskedAt)
	})
	for i := range rows {
		rows[i].Seq = i + 1
	}
}

// contentMD5 计算导出文件内容的 MD5，作为会话标识
func contentMD5(raw []byte) string {
	return fmt.Sprintf("%x", md5.Sum(raw))
}
