package scanner

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"

	"github.com/go-enry/go-enry/v2"

	"tallyhawk/internal/languages"
	"tallyhawk/internal/model"
)

// workerResult 表示流水线上的一个产物，三个字段至多一个有效。
type workerResult struct {
	file    *model.FileStat
	skipped *model.SkippedFile
	warning string
}

func skippedResult(path string, reason model.SkipReason, detail string) workerResult {
	return workerResult{skipped: &model.SkippedFile{Path: path, Reason: reason, Detail: detail}}
}

// foldInto 把单个结果并入累加器，只在聚合 goroutine 中调用。
func (r workerResult) foldInto(tally *model.Tally) {
	switch {
	case r.file != nil:
		tally.Add(*r.file)
	case r.skipped != nil:
		tally.AddSkipped(*r.skipped)
	case r.warning != "":
		tally.Warn(r.warning)
	}
}

// runWorker 持续消费任务直到队列关闭或扫描被取消。
// worker 之间不共享可变状态：Registry 只读，文件内容各自持有。
func (s *Service) runWorker(ctx context.Context, fsys fs.FS, tasks <-chan string, results chan<- workerResult) error {
	for path := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := s.process(fsys, path)
		if result.file == nil && result.skipped == nil {
			continue
		}
		if err := send(ctx, results, result); err != nil {
			return err
		}
	}
	return nil
}

// process 执行真实的文件读取、二进制检测和行分类。
func (s *Service) process(fsys fs.FS, path string) workerResult {
	if s.registry.IsBinaryName(path) {
		return skippedResult(path, model.SkipBinary, "binary file extension")
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		s.logger.Warn("read failed", slog.String("path", path), slog.Any("error", err))
		return skippedResult(path, model.SkipUnreadable, err.Error())
	}

	// enry.IsBinary 检查前 8000 字节中是否存在 NUL 字节。
	if enry.IsBinary(content) {
		return skippedResult(path, model.SkipBinary, "binary content")
	}

	profile, known := s.registry.Resolve(path)
	if !known {
		profile, known = s.registry.ResolveShebang(content)
	}
	if !known && s.options.SkipUnknown {
		return workerResult{}
	}

	counts, err := languages.Classify(bytes.NewReader(content), profile)
	if err != nil {
		s.logger.Warn("classify failed", slog.String("path", path), slog.Any("error", err))
		return skippedResult(path, model.SkipUnreadable, err.Error())
	}

	language := model.UnknownLanguage
	if known {
		language = profile.Name
	}

	return workerResult{file: &model.FileStat{
		Path:     path,
		Language: language,
		Lines:    s.applyCountingOptions(counts),
		Bytes:    int64(len(content)),
	}}
}

// applyCountingOptions 按配置丢弃注释行或空白行，保持 Total 与各分类之和一致。
func (s *Service) applyCountingOptions(counts model.LineCounts) model.LineCounts {
	if s.options.ExcludeComments {
		counts.Total -= counts.Comment
		counts.Comment = 0
	}
	if s.options.ExcludeBlanks {
		counts.Total -= counts.Blank
		counts.Blank = 0
	}
	return counts
}
