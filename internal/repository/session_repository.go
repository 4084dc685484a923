// Package repository 定义了分析会话缓存的接口和实现。
package repository

import "github.com/Kiran-Kowda/cba/internal/model"

// SessionRepository 接口定义了分析会话的存取操作。
// 会话以导出文件内容的 MD5 作为标识，派生表缓存随会话一起存续。
type SessionRepository interface {
	// Find 按文件 MD5 查找缓存的会话。
	Find(docMD5 string) (*model.AnalysisSession, bool)
	// Put 存入会话并返回实际生效的那一个：
	// 已有会话的 MD5 相同时保留原会话（连同已计算的派生表缓存），
	// 不同时整体替换，旧会话连同缓存一起失效。
	Put(session *model.AnalysisSession) *model.AnalysisSession
	// Current 返回当前持有的会话，没有时返回 nil。
	Current() *model.AnalysisSession
	// Clear 丢弃当前会话。
	Clear()
}

// memorySessionRepository 是 SessionRepository 接口的内存实现。
// 单槽位：任意时刻至多持有一份上传的会话，没有磁盘持久化。
type memorySessionRepository struct {
	session *model.AnalysisSession
}

// NewSessionRepository 创建一个新的内存 SessionRepository 实例。
func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

// Find 按文件 MD5 查找缓存的会话。
func (r *memorySessionRepository) Find(docMD5 string) (*model.AnalysisSession, bool) {
	if r.session == nil || r.session.DocMD5 != docMD5 {
		return nil, false
	}
	return r.session, true
}

// Put 存入会话，同一份文件重复存入时保留既有会话。
func (r *memorySessionRepository) Put(session *model.AnalysisSession) *model.AnalysisSession {
	if session == nil {
		return r.session
	}
	if r.session != nil && r.session.DocMD5 == session.DocMD5 {
		return r.session
	}
	r.session = session
	return session
}

// Current 返回当前持有的会话。
func (r *memorySessionRepository) Current() *model.AnalysisSession {
	return r.session
}

// Clear 丢弃当前会话。
func (r *memorySessionRepository) Clear() {
	r.session = nil
}
