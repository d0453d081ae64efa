// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、排除过滤、任务分发、并发执行和结果聚合，不负责语法解析细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"tallyhawk/internal/ignore"
	"tallyhawk/internal/languages"
	"tallyhawk/internal/model"
)

// Options 是扫描服务的配置。
type Options struct {
	// Workers 为 0 表示自动取 CPU 核数。
	Workers            int
	IncludeHidden      bool
	RespectIgnoreFiles bool
	ExcludePatterns    []string
	// ExcludeComments/ExcludeBlanks 为 true 时对应的行不计入统计（Total 同步扣除）。
	ExcludeComments bool
	ExcludeBlanks   bool
	// SkipUnknown 为 true 时未识别语言的文件直接丢弃，不计入 Unknown。
	SkipUnknown bool
	Logger      *slog.Logger
}

// DefaultOptions 返回默认配置：遵循忽略文件，自动并发度。
func DefaultOptions() Options {
	return Options{RespectIgnoreFiles: true}
}

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	options  Options
	workers  int
	logger   *slog.Logger
}

// NewService 创建扫描服务。
func NewService(registry *languages.Registry, options Options) *Service {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		registry: registry,
		options:  options,
		workers:  workers,
		logger:   logger,
	}
}

// Scan 扫描目录或单文件。
// 根路径不存在或无权限时返回致命错误；单文件失败只记录为跳过。
func (s *Service) Scan(ctx context.Context, targetPath string) (model.Report, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return model.Report{}, errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return model.Report{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return model.Report{}, rootError(absoluteTarget, err)
	}

	if !info.IsDir() {
		fsys := os.DirFS(filepath.Dir(absoluteTarget))
		return s.scanSingleFile(ctx, fsys, filepath.Base(absoluteTarget), absoluteTarget)
	}

	return s.ScanFS(ctx, os.DirFS(absoluteTarget), absoluteTarget)
}

// ScanFS 扫描任意 fs.FS 的根目录 "."，root 仅用于写入 Report。
//
// 流水线：
// 1. 单个遍历 goroutine 加载忽略文件、执行过滤并裁剪被排除的目录
// 2. 固定数量的 worker 读取文件、识别语言、逐行分类
// 3. 调用方 goroutine 作为唯一聚合点，逐个折叠结果到 Tally
func (s *Service) ScanFS(ctx context.Context, fsys fs.FS, root string) (model.Report, error) {
	if _, err := fs.Stat(fsys, "."); err != nil {
		return model.Report{}, rootError(root, err)
	}

	filter, err := ignore.NewFilter(ignore.Options{
		IncludeHidden:      s.options.IncludeHidden,
		RespectIgnoreFiles: s.options.RespectIgnoreFiles,
		Patterns:           s.options.ExcludePatterns,
	})
	if err != nil {
		return model.Report{}, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	tasks := make(chan string, s.workers*4)
	results := make(chan workerResult, s.workers*4)

	group.Go(func() error {
		defer close(tasks)
		return s.walk(groupCtx, fsys, filter, tasks, results)
	})

	for i := 0; i < s.workers; i++ {
		group.Go(func() error {
			return s.runWorker(groupCtx, fsys, tasks, results)
		})
	}

	var pipelineErr error
	go func() {
		pipelineErr = group.Wait()
		close(results)
	}()

	tally := model.NewTally()
	for item := range results {
		item.foldInto(tally)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.Report{}, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
	}
	if pipelineErr != nil {
		return model.Report{}, pipelineErr
	}

	return s.finish(tally, root), nil
}

// scanSingleFile 在用户给定单文件路径时直接处理该文件，不经过排除规则。
func (s *Service) scanSingleFile(ctx context.Context, fsys fs.FS, name string, root string) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	tally := model.NewTally()
	s.process(fsys, name).foldInto(tally)
	return s.finish(tally, root), nil
}

// walk 遍历目录并把通过过滤的文件推入任务队列。
func (s *Service) walk(
	ctx context.Context,
	fsys fs.FS,
	filter *ignore.Filter,
	tasks chan<- string,
	results chan<- workerResult,
) error {
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// 根目录本身无法读取属于致命错误，其余目录只记录并跳过。
			if path == "." {
				return rootError(path, walkErr)
			}
			s.logger.Warn("walk failed", slog.String("path", path), slog.Any("error", walkErr))
			if err := send(ctx, results, skippedResult(path, model.SkipUnreadable, walkErr.Error())); err != nil {
				return err
			}
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		isDir := entry.IsDir()
		if path != "." && !filter.Accept(path, isDir) {
			if isDir {
				s.logger.Debug("prune directory", slog.String("path", path))
				return fs.SkipDir
			}
			return nil
		}

		if isDir {
			for _, err := range filter.LoadDir(fsys, path) {
				s.logger.Warn("ignore file dropped", slog.Any("error", err))
				if sendErr := send(ctx, results, workerResult{warning: err.Error()}); sendErr != nil {
					return sendErr
				}
			}
			return nil
		}

		// 符号链接、设备文件等非普通文件不参与统计。
		if !entry.Type().IsRegular() {
			return nil
		}

		return send(ctx, tasks, path)
	})
}

// finish 冻结累加结果并补充语言后缀信息。
func (s *Service) finish(tally *model.Tally, root string) model.Report {
	report := tally.Report(root)
	for idx := range report.Languages {
		report.Languages[idx].Extensions = s.registry.ExtensionsForLanguage(report.Languages[idx].Language)
	}
	return report
}

// send 在取消时放弃发送，避免阻塞在已无人消费的通道上。
func send[T any](ctx context.Context, ch chan<- T, value T) error {
	select {
	case ch <- value:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
