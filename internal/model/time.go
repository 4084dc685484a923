package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// createdAtLayout 匹配导出文件中去掉时区后缀之后的时间戳，
	// 小数秒部分可以省略。
	createdAtLayout = "2006-01-02T15:04:05.999999"

	displayTimeFormat = "January 02, 2006 15:04:05"
)

// DisplayTime is a custom time type to format time as "January 02, 2006 15:04:05".
type DisplayTime time.Time

// String implements the fmt.Stringer interface.
func (t DisplayTime) String() string {
	return time.Time(t).Format(displayTimeFormat)
}

// ParseCreatedAt 解析导出文件中的 created_at 时间戳。
// 第一个 '+' 之后的时区后缀会被截断丢弃，只保留朴素的本地时间。
func ParseCreatedAt(raw string) (time.Time, error) {
	naive := raw
	if i := strings.IndexByte(raw, '+'); i >= 0 {
		naive = raw[:i]
	}

	t, err := time.Parse(createdAtLayout, naive)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析时间戳 %q: %w", raw, err)
	}
	return t, nil
}

// FormatAskedAt 以报表展示格式输出提问时间。
func FormatAskedAt(t time.Time) string {
	return DisplayTime(t).String()
}
