// Package pipeline 定义了会话导出文件的核心处理流程：
// 解析 JSON 导出并把嵌套的会话消息拍平成逐问题的平铺行。
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kiran-Kowda/cba/internal/model"
)

// 导出文件的格式错误。任何一处出现都会导致整份文件被拒绝，不产出部分结果。
var (
	ErrNoConversations = errors.New("导出文件缺少 conversations 字段")
	ErrMissingCountry  = errors.New("会话记录缺少 country 字段")
	ErrMissingMessages = errors.New("会话记录缺少 messages 字段")
)

// ParseExport 解析原始 JSON 字节并校验根结构。
func ParseExport(raw []byte) (*model.ChatExport, error) {
	var export model.ChatExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("解析导出文件失败: %w", err)
	}
	if export.Conversations == nil {
		return nil, ErrNoConversations
	}
	return &export, nil
}

// Flatten 把导出文件拍平成逐问题的平铺行：每条用户消息产出一行，
// 行内的回答与评分取自同一会话中最后一条 assistant 文本消息。
// 行按会话在文件中的顺序、会话内用户消息的顺序从 1 开始连续编号。
// 纯转换，不修改输入；任何会话出错时整体失败。
func Flatten(export *model.ChatExport) ([]model.QuestionRow, error) {
	rows := make([]model.QuestionRow, 0, len(export.Conversations))

	for i, conv := range export.Conversations {
		askedAt, err := model.ParseCreatedAt(conv.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("第 %d 条会话: %w", i+1, err)
		}
		if conv.Messages == nil {
			return nil, fmt.Errorf("第 %d 条会话: %w", i+1, ErrMissingMessages)
		}
		if conv.Country == nil {
			return nil, fmt.Errorf("第 %d 条会话: %w", i+1, ErrMissingCountry)
		}

		// 1. 先扫一遍消息，找到最后一条 assistant 文本回复
		answer, score := lastAssistantAnswer(conv.Messages)

		// 2. 再扫一遍，为每条用户消息产出一行，共享同一个回答
		for _, msg := range conv.Messages {
			if msg.Role != model.RoleUser {
				continue
			}
			rows = append(rows, model.QuestionRow{
				Seq:      len(rows) + 1,
				AskedAt:  askedAt,
				Country:  *conv.Country,
				Question: msg.Content,
				Answer:   answer,
				Score:    score,
			})
		}
	}

	return rows, nil
}

// lastAssistantAnswer 返回消息序列中最后一条 assistant 文本消息的内容与评分。
// 返回值是独立副本，不会引用输入文档；没有这样的消息时两者均为 nil。
func lastAssistantAnswer(messages []model.Message) (answer *string, score *float64) {
	for _, msg := range messages {
		if msg.Role != model.RoleAssistant || msg.Type != model.TypeText {
			continue
		}
		content := msg.Content
		answer = &content
		if msg.Score != nil {
			s := *msg.Score
			score = &s
		} else {
			score = nil
		}
	}
	return answer, score
}
