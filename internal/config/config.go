// Package config 定义 tallyhawk 的运行配置。
// 配置来源按优先级从低到高：内置默认值、YAML 配置文件、显式设置的命令行参数。
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"tallyhawk/internal/logging"
	"tallyhawk/internal/report"
	"tallyhawk/internal/scanner"
)

// FileName 是扫描根目录下自动加载的配置文件名。
const FileName = ".tallyhawk.yaml"

// Options 是全部可配置项。
type Options struct {
	IncludeHidden      bool     `yaml:"include_hidden"`
	RespectIgnoreFiles bool     `yaml:"respect_ignore_files"`
	ExcludePatterns    []string `yaml:"exclude"`
	CountComments      bool     `yaml:"count_comments"`
	CountBlanks        bool     `yaml:"count_blanks"`
	SkipUnknown        bool     `yaml:"skip_unknown"`
	// Workers 为 0 表示自动取 CPU 核数。
	Workers   int    `yaml:"workers"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	ShowFiles bool   `yaml:"show_files"`
	NoColor   bool   `yaml:"no_color"`
	LogLevel  string `yaml:"log_level"`
}

// Default 返回内置默认配置。
func Default() Options {
	return Options{
		RespectIgnoreFiles: true,
		CountComments:      true,
		CountBlanks:        true,
		Format:             string(report.FormatTable),
		LogLevel:           logging.DefaultLevel,
	}
}

// Load 读取 YAML 配置文件并覆盖 base 中出现的字段，未出现的字段保持不变。
func Load(path string, base Options) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}

	options, err := decode(bytes.NewReader(content), base)
	if err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return options, nil
}

// LoadOptional 与 Load 相同，但文件不存在时返回 base 且 found 为 false。
func LoadOptional(path string, base Options) (Options, bool, error) {
	options, err := Load(path, base)
	if errors.Is(err, fs.ErrNotExist) {
		return base, false, nil
	}
	if err != nil {
		return base, false, err
	}
	return options, true, nil
}

// decode 拒绝未知字段，避免拼写错误的配置项被静默忽略。
func decode(reader io.Reader, base Options) (Options, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	options := base
	if err := decoder.Decode(&options); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, err
	}
	return options, nil
}

// Validate 检查配置组合是否合法。
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", o.Workers)
	}
	if _, err := report.ParseFormat(o.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// ScannerOptions 转换为扫描服务的配置。
func (o Options) ScannerOptions(logger *slog.Logger) scanner.Options {
	return scanner.Options{
		Workers:            o.Workers,
		IncludeHidden:      o.IncludeHidden,
		RespectIgnoreFiles: o.RespectIgnoreFiles,
		ExcludePatterns:    append([]string(nil), o.ExcludePatterns...),
		ExcludeComments:    !o.CountComments,
		ExcludeBlanks:      !o.CountBlanks,
		SkipUnknown:        o.SkipUnknown,
		Logger:             logger,
	}
}
