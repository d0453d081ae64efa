package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Options 是过滤器的配置。
type Options struct {
	// IncludeHidden 为 true 时不再排除隐藏文件；版本控制目录仍被排除。
	IncludeHidden bool
	// RespectIgnoreFiles 为 false 时不读取任何忽略文件。
	RespectIgnoreFiles bool
	// Patterns 是命令行传入的 glob，按顺序生效，以 ! 开头表示强制包含。
	Patterns []string
}

// Filter 决定某个路径是否参与扫描。
//
// 路径统一使用相对扫描根目录、以 / 分隔的形式，根目录为 "."。
// LoadDir 与 Accept 只由遍历 goroutine 调用，不需要加锁。
type Filter struct {
	options  Options
	cli      []Rule
	defaults []Rule
	dirs     map[string][]ruleSet
}

// NewFilter 编译命令行规则并创建过滤器。
// 命令行模式非法属于配置错误，直接返回。
func NewFilter(options Options) (*Filter, error) {
	filter := &Filter{
		options:  options,
		defaults: defaultRules(options.IncludeHidden),
		dirs:     make(map[string][]ruleSet),
	}

	for _, raw := range options.Patterns {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		rule, ok := newGlobRule(raw, SourceCLI, "cli")
		if !ok {
			return nil, fmt.Errorf("invalid exclude pattern %q", raw)
		}
		filter.cli = append(filter.cli, rule)
	}

	return filter, nil
}

// LoadDir 读取 dir 目录下的忽略文件，必须在遍历 dir 的子项之前调用。
// 返回的错误都是非致命的：出错的文件被整体丢弃，其余规则继续生效。
func (f *Filter) LoadDir(fsys fs.FS, dir string) []error {
	if !f.options.RespectIgnoreFiles {
		return nil
	}

	dir = cleanPath(dir)
	names := []string{ignoreFileName, gitignoreFileName}
	if dir == "." {
		names = append(names, gitExcludePath)
	}

	var sets []ruleSet
	var errs []error
	for _, name := range names {
		filePath := path.Join(dir, name)
		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || isDirectoryError(fsys, filePath) {
				continue
			}
			errs = append(errs, fmt.Errorf("read %s: %w", filePath, err))
			continue
		}

		rules, err := Parse(filePath, content)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(rules) > 0 {
			sets = append(sets, ruleSet{origin: filePath, rules: rules})
		}
	}

	if len(sets) > 0 {
		f.dirs[dir] = sets
	}
	return errs
}

// Accept 返回 true 表示路径参与扫描；目录返回 false 时调用方不应再进入该目录。
func (f *Filter) Accept(p string, isDir bool) bool {
	rule, ok := f.Match(p, isDir)
	return !ok || rule.Polarity == Include
}

// Match 返回决定该路径结果的规则；没有任何规则命中时 ok 为 false。
func (f *Filter) Match(p string, isDir bool) (Rule, bool) {
	p = cleanPath(p)
	if p == "." {
		return Rule{}, false
	}

	if rule, ok := firstMatch(f.cli, p, isDir); ok {
		return rule, true
	}

	// 从最近的父目录向上逐级检查忽略文件。
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		if sets, ok := f.dirs[dir]; ok {
			rel := relativeTo(dir, p)
			for _, set := range sets {
				if rule, ok := firstMatch(set.rules, rel, isDir); ok {
					return rule, true
				}
			}
		}
		if dir == "." {
			break
		}
	}

	return firstMatch(f.defaults, p, isDir)
}

func cleanPath(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

func relativeTo(dir string, p string) string {
	if dir == "." {
		return p
	}
	return strings.TrimPrefix(p, dir+"/")
}

// isDirectoryError 处理 .ignore 恰好是目录的情况。
func isDirectoryError(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}
