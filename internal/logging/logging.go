// Package logging 构建命令行使用的 slog.Logger。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel 只输出告警及以上级别，避免干扰 stdout 上的报告。
const DefaultLevel = "warn"

// ParseLevel 解析 debug/info/warn/error，大小写不敏感；空字符串按 DefaultLevel 处理。
func ParseLevel(raw string) (slog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}

// New 返回写入 writer 的文本格式 logger。
func New(level string, writer io.Writer) (*slog.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: parsed})
	return slog.New(handler), nil
}
