package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tallyhawk/internal/model"
)

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, report model.Report) error {
	content, err := marshalReport(report)
	if err != nil {
		return err
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, report model.Report) error {
	content, err := marshalReport(report)
	if err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

// marshalReport 输出以换行结尾的缩进 JSON；空列表编码为 [] 而不是 null。
func marshalReport(report model.Report) ([]byte, error) {
	if report.Languages == nil {
		report.Languages = []model.LanguageStats{}
	}
	if report.Files == nil {
		report.Files = []model.FileStat{}
	}
	if report.SkippedFiles == nil {
		report.SkippedFiles = []model.SkippedFile{}
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}

	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(content, '\n'), nil
}
