package classifier

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kiran-Kowda/cba/internal/config"
	"github.com/Kiran-Kowda/cba/internal/model"
)

func sampleQuestions(n int) []string {
	pool := []string{
		"What is Atlan?",
		"How to use Atlan connectors",
		"Atlan pricing",
		"What is data lineage?",
		"How do I set up a guide",
		"hello",
	}
	questions := make([]string, n)
	for i := range questions {
		questions[i] = fmt.Sprintf("%s #%d", pool[i%len(pool)], i)
	}
	return questions
}

func TestClassifyBatches_MatchesSingleShot(t *testing.T) {
	for _, batchSize := range []int{1, 3, 250} {
		for _, n := range []int{0, 1, 5, 501} {
			c := New(config.AnalyzerConfig{BatchSize: batchSize})
			questions := sampleQuestions(n)

			want := make([]model.Category, 0, n)
			for _, q := range questions {
				want = append(want, c.Classify(q))
			}

			got := c.ClassifyBatches(questions, nil)
			require.Equal(t, want, got, "batchSize=%d n=%d", batchSize, n)
		}
	}
}

func TestClassifyBatches_EmptyInput(t *testing.T) {
	c := defaultClassifier()

	calls := 0
	got := c.ClassifyBatches(nil, func(model.BatchProgress) { calls++ })

	require.NotNil(t, got)
	require.Empty(t, got)
	require.Zero(t, calls)
}

func TestClassifyBatches_ProgressSequence(t *testing.T) {
	c := New(config.AnalyzerConfig{BatchSize: 2})
	questions := sampleQuestions(5)

	var events []model.BatchProgress
	c.ClassifyBatches(questions, func(p model.BatchProgress) {
		events = append(events, p)
	})

	require.Len(t, events, 3)
	require.InDelta(t, 0.4, events[0].Fraction, 1e-9)
	require.InDelta(t, 0.8, events[1].Fraction, 1e-9)
	require.Equal(t, 1.0, events[2].Fraction)
	require.Equal(t, []int{2, 4, 5}, []int{events[0].Processed, events[1].Processed, events[2].Processed})
	for _, e := range events {
		require.Len(t, e.Categories, e.Processed)
	}
}

func TestClassifyBatches_ExactMultipleEndsAtOne(t *testing.T) {
	c := New(config.AnalyzerConfig{BatchSize: 2})

	var fractions []float64
	c.ClassifyBatches(sampleQuestions(4), func(p model.BatchProgress) {
		fractions = append(fractions, p.Fraction)
	})

	require.Equal(t, []float64{0.5, 1.0}, fractions)
}

func TestClassifyBatches_DefaultBatchSize(t *testing.T) {
	c := defaultClassifier()

	var processed []int
	got := c.ClassifyBatches(sampleQuestions(251), func(p model.BatchProgress) {
		processed = append(processed, p.Processed)
	})

	require.Len(t, got, 251)
	require.Equal(t, []int{250, 251}, processed)
}

func TestClassifyBatches_InvalidBatchSizeNormalized(t *testing.T) {
	c := New(config.AnalyzerConfig{BatchSize: -5})

	calls := 0
	got := c.ClassifyBatches(sampleQuestions(300), func(model.BatchProgress) { calls++ })

	require.Len(t, got, 300)
	require.Equal(t, 2, calls)
}

func TestClassifyBatches_Restartable(t *testing.T) {
	c := New(config.AnalyzerConfig{BatchSize: 7})
	questions := sampleQuestions(20)

	first := c.ClassifyBatches(questions, nil)
	second := c.ClassifyBatches(questions, nil)

	require.Equal(t, first, second)
}

func TestClassifyBatches_CumulativePrefixIsStable(t *testing.T) {
	c := New(config.AnalyzerConfig{BatchSize: 2})
	questions := sampleQuestions(6)

	var firstEvent []model.Category
	final := c.ClassifyBatches(questions, func(p model.BatchProgress) {
		if firstEvent == nil {
			firstEvent = p.Categories
		}
	})

	// 早期事件持有的前缀在后续分块处理后内容不变
	require.Equal(t, final[:len(firstEvent)], firstEvent)
}
