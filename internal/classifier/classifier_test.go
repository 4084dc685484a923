package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kiran-Kowda/cba/internal/config"
	"github.com/Kiran-Kowda/cba/internal/model"
)

func defaultClassifier() *Classifier {
	return New(config.AnalyzerConfig{})
}

func TestClassify_CanonicalQuestions(t *testing.T) {
	c := defaultClassifier()

	require.Equal(t, model.CategoryBrandedDefinition, c.Classify("What is Atlan?"))
	require.Equal(t, model.CategoryBrandedHowTo, c.Classify("How to use Atlan connectors"))
	require.Equal(t, model.CategoryBranded, c.Classify("Atlan pricing"))
	require.Equal(t, model.CategoryDefinition, c.Classify("What is data lineage?"))
	require.Equal(t, model.CategoryHowTo, c.Classify("How do I set up a guide"))
	require.Equal(t, model.CategoryOthers, c.Classify("hello"))
}

func TestClassify_DefinitionBeatsHowTo(t *testing.T) {
	c := defaultClassifier()

	// 两类关键词同时出现时，定义类优先
	require.Equal(t, model.CategoryBrandedDefinition, c.Classify("what is the process to install atlan"))
	require.Equal(t, model.CategoryDefinition, c.Classify("explain the steps of data modeling"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := defaultClassifier()

	questions := []string{"What is Atlan?", "HOW TO CONNECT SNOWFLAKE", "atlan PRICING", "Hello There"}
	for _, q := range questions {
		require.Equal(t, c.Classify(strings.ToLower(q)), c.Classify(strings.ToUpper(q)), "question: %s", q)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := defaultClassifier()

	for _, q := range []string{"What is Atlan?", "", "how do I export data"} {
		require.Equal(t, c.Classify(q), c.Classify(q))
	}
}

func TestClassify_EmptyString(t *testing.T) {
	require.Equal(t, model.CategoryOthers, defaultClassifier().Classify(""))
}

func TestClassify_SubstringMatching(t *testing.T) {
	c := defaultClassifier()

	// 关键词按子串匹配，不做分词
	require.Equal(t, model.CategoryHowTo, c.Classify("I processed the file yesterday"))
	require.Equal(t, model.CategoryDefinition, c.Classify("this will definitely break"))
}

func TestNew_ConfigOverridesBrand(t *testing.T) {
	c := New(config.AnalyzerConfig{Brand: "Acme"})

	require.Equal(t, model.CategoryBranded, c.Classify("acme pricing"))
	require.Equal(t, model.CategoryBrandedDefinition, c.Classify("What is ACME?"))
	// 换了品牌词之后，原品牌按普通词处理
	require.Equal(t, model.CategoryOthers, c.Classify("atlan pricing"))
}

func TestNew_ConfigOverridesKeywords(t *testing.T) {
	c := New(config.AnalyzerConfig{
		DefinitionKeywords: []string{"何为"},
		HowToKeywords:      []string{"怎么"},
	})

	require.Equal(t, model.CategoryDefinition, c.Classify("何为数据血缘"))
	require.Equal(t, model.CategoryHowTo, c.Classify("怎么接入飞书"))
	require.Equal(t, model.CategoryOthers, c.Classify("what is data lineage"))
}

func TestNew_EmptyConfigFallsBackToDefaults(t *testing.T) {
	c := New(config.AnalyzerConfig{})

	require.Equal(t, "atlan", c.brand)
	require.Equal(t, defaultDefinitionKeywords, c.definitionKeywords)
	require.Equal(t, defaultHowToKeywords, c.howToKeywords)
	require.Equal(t, defaultBatchSize, c.batchSize)
}
