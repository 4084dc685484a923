// Package model 包含了应用的数据模型定义。
package model

// 消息角色与类型的取值，对应导出文件中本工具关心的枚举。
// 其他取值的消息会被直接忽略，不报错。
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	TypeText = "text"
)

// ChatExport 代表一份完整的 Chatbase 会话导出文件（JSON 根对象）。
type ChatExport struct {
	// Conversations 为 nil 说明导出文件缺少 conversations 键，属于格式错误；
	// 空切片则是一份合法的空导出。
	Conversations []ConversationRecord `json:"conversations"`
}

// ConversationRecord 代表导出文件中的一次完整会话。
// Country 或 Messages 为 nil 时，整份文件按格式错误处理。
type ConversationRecord struct {
	CreatedAt string    `json:"created_at"` // 形如 2024-03-15T10:23:45.123456+00:00
	Country   *string   `json:"country"`
	Messages  []Message `json:"messages"`
}

// Message 代表会话内的单条消息。
type Message struct {
	Role    string   `json:"role"` // "user" 或 "assistant"
	Type    string   `json:"type"` // 仅 "text" 类型的回答会被采纳
	Content string   `json:"content"`
	Score   *float64 `json:"score,omitempty"` // 仅部分 assistant 消息带有评分
}
