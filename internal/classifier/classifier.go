// Package classifier 实现基于关键词的用户问题分类。
// 分类是纯字符串匹配：无状态、无随机性、不依赖外部服务，
// 对任意输入都不会失败。
package classifier

import (
	"strings"

	"github.com/Kiran-Kowda/cba/internal/config"
	"github.com/Kiran-Kowda/cba/internal/model"
)

// 内置默认值，配置项缺失时回退使用。
var (
	defaultBrand              = "atlan"
	defaultDefinitionKeywords = []string{"what is", "what's", "define", "explain", "describe"}
	defaultHowToKeywords      = []string{"how to", "how do", "guide", "steps", "process"}
)

// defaultBatchSize 是批量分类的默认分块大小
const defaultBatchSize = 250

// Classifier 将问题字符串映射到六个固定类别之一。
type Classifier struct {
	brand              string
	definitionKeywords []string
	howToKeywords      []string
	batchSize          int
}

// New 根据配置构造分类器。品牌词与关键词会统一转为小写，
// 空缺的配置项回退到内置默认值。
func New(cfg config.AnalyzerConfig) *Classifier {
	c := &Classifier{
		brand:              strings.ToLower(cfg.Brand),
		definitionKeywords: lowerAll(cfg.DefinitionKeywords),
		howToKeywords:      lowerAll(cfg.HowToKeywords),
		batchSize:          cfg.BatchSize,
	}
	if c.brand == "" {
		c.brand = defaultBrand
	}
	if len(c.definitionKeywords) == 0 {
		c.definitionKeywords = defaultDefinitionKeywords
	}
	if len(c.howToKeywords) == 0 {
		c.howToKeywords = defaultHowToKeywords
	}
	if c.batchSize < 1 {
		c.batchSize = defaultBatchSize
	}
	return c
}

// Classify 将单个问题映射到一个类别。
// 规则：整句转小写后做子串匹配；先看是否含品牌词，
// 两个分支内都先试定义类关键词、再试操作类关键词，首个命中即返回；
// 全部未命中时品牌分支返回 Branded，否则返回 Others。
func (c *Classifier) Classify(question string) model.Category {
	q := strings.ToLower(question)

	if strings.Contains(q, c.brand) {
		switch {
		case containsAny(q, c.definitionKeywords):
			return model.CategoryBrandedDefinition
		case containsAny(q, c.howToKeywords):
			return model.CategoryBrandedHowTo
		}
		return model.CategoryBranded
	}

	switch {
	case containsAny(q, c.definitionKeywords):
		return model.CategoryDefinition
	case containsAny(q, c.howToKeywords):
		return model.CategoryHowTo
	}
	return model.CategoryOthers
}

// containsAny 判断 s 是否包含关键词列表中的任意一个
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return lowered
}
