package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kiran-Kowda/cba/internal/model"
)

func TestSessionRepository_PutAndFind(t *testing.T) {
	repo := NewSessionRepository()

	session := &model.AnalysisSession{DocMD5: "abc123", FileName: "export.json"}
	stored := repo.Put(session)
	require.Same(t, session, stored)

	found, ok := repo.Find("abc123")
	require.True(t, ok)
	require.Same(t, session, found)
}

func TestSessionRepository_FindMiss(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Find("abc123")
	require.False(t, ok)

	repo.Put(&model.AnalysisSession{DocMD5: "abc123"})
	_, ok = repo.Find("other")
	require.False(t, ok)
}

func TestSessionRepository_SameMD5KeepsExistingSession(t *testing.T) {
	repo := NewSessionRepository()

	first := &model.AnalysisSession{DocMD5: "abc123"}
	first.Daily = []model.DailyMetric{{Questions: 5}} // 模拟已计算的缓存
	repo.Put(first)

	stored := repo.Put(&model.AnalysisSession{DocMD5: "abc123"})
	require.Same(t, first, stored)
	require.Len(t, stored.Daily, 1)
}

func TestSessionRepository_NewMD5ReplacesSession(t *testing.T) {
	repo := NewSessionRepository()

	first := &model.AnalysisSession{DocMD5: "abc123"}
	repo.Put(first)

	second := &model.AnalysisSession{DocMD5: "def456"}
	stored := repo.Put(second)
	require.Same(t, second, stored)
	require.Same(t, second, repo.Current())

	// 旧会话连同缓存一起失效
	_, ok := repo.Find("abc123")
	require.False(t, ok)
}

func TestSessionRepository_Clear(t *testing.T) {
	repo := NewSessionRepository()
	repo.Put(&model.AnalysisSession{DocMD5: "abc123"})

	repo.Clear()
	require.Nil(t, repo.Current())
	_, ok := repo.Find("abc123")
	require.False(t, ok)
}
