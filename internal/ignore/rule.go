// Package ignore 实现扫描时的排除规则。
//
// 规则有三个来源，按优先级从高到低：
// 1. 命令行（--exclude）
// 2. 忽略文件（.ignore、.gitignore、.git/info/exclude），离路径最近的目录优先
// 3. 内置默认规则（版本控制目录、隐藏文件）
//
// 第一个命中的规则决定结果；全部未命中时默认包含。
// 规则按路径段匹配，不做子串匹配。
package ignore

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Source 表示规则来源。
type Source int

const (
	// SourceDefault 是内置默认规则。
	SourceDefault Source = iota
	// SourceIgnoreFile 来自目录中的忽略文件。
	SourceIgnoreFile
	// SourceCLI 来自命令行参数。
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceIgnoreFile:
		return "ignore-file"
	case SourceCLI:
		return "cli"
	default:
		return "unknown"
	}
}

// Polarity 表示规则命中后的结论。
type Polarity int

const (
	// Exclude 命中即排除。
	Exclude Polarity = iota
	// Include 命中即包含（以 ! 开头的规则）。
	Include
)

// Rule 是一条排除或包含规则。
type Rule struct {
	Pattern  string
	Source   Source
	Polarity Polarity
	// Origin 是规则所在的忽略文件路径；命令行与内置规则分别为 "cli" 和 "default"。
	Origin string
	// Line 是规则在忽略文件中的行号，从 1 开始；其他来源为 0。
	Line int

	match func(rel string, isDir bool) bool
}

// Matches 判断相对路径是否命中规则。
// rel 使用 / 分隔，相对于规则生效的目录。
func (r Rule) Matches(rel string, isDir bool) bool {
	if r.match == nil {
		return false
	}
	return r.match(rel, isDir)
}

// splitPolarity 解析开头的 !。
func splitPolarity(pattern string) (string, Polarity) {
	if strings.HasPrefix(pattern, "!") {
		return pattern[1:], Include
	}
	return pattern, Exclude
}

// newGlobRule 构建命令行规则，使用 doublestar 语法。
//
// - 不含 / 的模式只匹配单个路径段（条目自身名称）
// - 含 / 的模式匹配完整相对路径
// - 以 / 结尾的模式只匹配目录
func newGlobRule(raw string, source Source, origin string) (Rule, bool) {
	pattern, polarity := splitPolarity(strings.TrimSpace(raw))
	if strings.HasPrefix(pattern, `\!`) {
		pattern = pattern[1:]
	}

	dirOnly := strings.HasSuffix(pattern, "/")
	glob := strings.Trim(pattern, "/")
	if glob == "" || !doublestar.ValidatePattern(glob) {
		return Rule{}, false
	}

	rule := Rule{
		Pattern:  raw,
		Source:   source,
		Polarity: polarity,
		Origin:   origin,
		match:    globMatcher(glob, dirOnly, strings.Contains(glob, "/")),
	}
	return rule, true
}

// globMatcher 用 doublestar 匹配：anchored 时匹配完整相对路径，否则只匹配条目名称。
func globMatcher(glob string, dirOnly bool, anchored bool) func(rel string, isDir bool) bool {
	return func(rel string, isDir bool) bool {
		if dirOnly && !isDir {
			return false
		}
		subject := path.Base(rel)
		if anchored {
			subject = rel
		}
		matched, err := doublestar.Match(glob, subject)
		return err == nil && matched
	}
}

// newGitignoreRule 构建忽略文件中的一行规则。
// 单行模式交给 go-gitignore 编译；否定由过滤器自己处理，
// 这样子目录的 !keep.log 可以覆盖父目录的 *.log。
func newGitignoreRule(raw string, origin string, line int) (Rule, bool) {
	pattern, polarity := splitPolarity(raw)
	if strings.Trim(pattern, "/") == "" || !doublestar.ValidatePattern(strings.Trim(pattern, "/")) {
		return Rule{}, false
	}

	rule := Rule{
		Pattern:  raw,
		Source:   SourceIgnoreFile,
		Polarity: polarity,
		Origin:   origin,
		Line:     line,
	}

	// go-gitignore 不支持 ? 通配符，这类模式按 gitignore 的锚定规则交给 doublestar。
	if strings.Contains(pattern, "?") {
		dirOnly := strings.HasSuffix(pattern, "/")
		glob := strings.TrimSuffix(pattern, "/")
		anchored := strings.Contains(glob, "/")
		rule.match = globMatcher(strings.TrimPrefix(glob, "/"), dirOnly, anchored)
		return rule, true
	}

	matcher := gitignore.CompileIgnoreLines(pattern)
	rule.match = func(rel string, isDir bool) bool {
		// go-gitignore 通过结尾的 / 识别目录，例如 build/ 只匹配目录。
		if isDir {
			rel += "/"
		}
		return matcher.MatchesPath(rel)
	}
	return rule, true
}

// vcsDirectories 总是被排除，除非命令行显式包含。
var vcsDirectories = []string{".git", ".hg", ".svn"}

// defaultRules 返回内置规则。
func defaultRules(includeHidden bool) []Rule {
	rules := make([]Rule, 0, len(vcsDirectories)+1)
	for _, name := range vcsDirectories {
		rules = append(rules, Rule{
			Pattern: name,
			Source:  SourceDefault,
			Origin:  "default",
			match: func(rel string, _ bool) bool {
				return path.Base(rel) == name
			},
		})
	}

	if !includeHidden {
		rules = append(rules, Rule{
			Pattern: ".*",
			Source:  SourceDefault,
			Origin:  "default",
			match: func(rel string, _ bool) bool {
				base := path.Base(rel)
				return len(base) > 1 && strings.HasPrefix(base, ".") && base != ".."
			},
		})
	}

	return rules
}

// firstMatch 按“后写的规则覆盖先写的规则”返回第一个命中的规则。
func firstMatch(rules []Rule, rel string, isDir bool) (Rule, bool) {
	for idx := len(rules) - 1; idx >= 0; idx-- {
		if rules[idx].Matches(rel, isDir) {
			return rules[idx], true
		}
	}
	return Rule{}, false
}
