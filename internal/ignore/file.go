package ignore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformed 表示忽略文件无法解析，整个文件的规则都会被丢弃。
var ErrMalformed = errors.New("malformed ignore file")

// 单个目录中按优先级从高到低检查的忽略文件。
const (
	ignoreFileName    = ".ignore"
	gitignoreFileName = ".gitignore"
	// gitExcludePath 只在扫描根目录读取，优先级低于根目录的 .gitignore。
	gitExcludePath = ".git/info/exclude"
)

// ruleSet 是一个忽略文件解析出的全部规则，按文件中的顺序排列。
type ruleSet struct {
	origin string
	rules  []Rule
}

// Parse 解析一个 gitignore 格式的忽略文件。
// origin 用于告警和调试，通常是文件相对扫描根目录的路径。
//
// 约束说明：
// - 空行与 # 开头的行被忽略
// - 内容包含 NUL 字节、不是合法 UTF-8 或存在非法模式时返回 ErrMalformed
func Parse(origin string, content []byte) ([]Rule, error) {
	if bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s: not a text file", ErrMalformed, origin)
	}

	var rules []Rule
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule, ok := newGitignoreRule(line, origin, lineNumber)
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: invalid pattern %q", ErrMalformed, origin, lineNumber, line)
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, origin, err)
	}

	return rules, nil
}
