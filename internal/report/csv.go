package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"tallyhawk/internal/model"
)

var csvHeader = []string{"language", "files", "total", "code", "comment", "blank", "bytes"}

// PrintCSV 每个语言输出一行，最后追加 TOTAL 合计行。
func PrintCSV(writer io.Writer, report model.Report) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	for _, item := range report.Languages {
		if err := csvWriter.Write(csvRow(item.Language, item.Files, item.Lines, item.Bytes)); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	total := report.Total
	if err := csvWriter.Write(csvRow("TOTAL", total.Files, total.Lines, total.Bytes)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func csvRow(name string, files int64, lines model.LineCounts, size int64) []string {
	return []string{
		name,
		formatInt(files),
		formatInt(lines.Total),
		formatInt(lines.Code),
		formatInt(lines.Comment),
		formatInt(lines.Blank),
		formatInt(size),
	}
}
