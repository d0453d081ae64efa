// Package report 提供 tallyhawk 的输出能力。
// 当前实现支持 table 控制台格式、JSON 格式（含文件导出）和 CSV 格式。
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"tallyhawk/internal/model"
)

// Format 是输出格式名称。
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat 解析 --format 参数，大小写不敏感。
func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case FormatTable, FormatJSON, FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected table, json or csv)", raw)
	}
}

// TableOptions 控制表格输出的可选部分。
type TableOptions struct {
	// ShowFiles 为 true 时额外输出逐文件明细。
	ShowFiles bool
	// Color 为 true 时语言名使用颜色渲染，调用方负责判断是否为终端。
	Color bool
}

var (
	languageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	totalStyle    = lipgloss.NewStyle().Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// PrintTable 使用表格展示扫描结果。
func PrintTable(writer io.Writer, report model.Report, options TableOptions) error {
	paint := func(style lipgloss.Style, text string) string {
		if !options.Color {
			return text
		}
		return style.Render(text)
	}

	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "%s %s\n\n", paint(totalStyle, "Scanned path"), report.Root)

	languageTable := newTable(&buffer, []string{"Language", "Files", "Share", "Code", "Comment", "Blank", "Total", "Size"})
	for _, item := range report.Languages {
		languageTable.Append([]string{
			paint(languageStyle, item.Language),
			formatInt(item.Files),
			share(item.Lines.Total, report.Total.Lines.Total),
			formatInt(item.Lines.Code),
			formatInt(item.Lines.Comment),
			formatInt(item.Lines.Blank),
			formatInt(item.Lines.Total),
			humanize.IBytes(uint64(item.Bytes)),
		})
	}
	languageTable.SetFooter([]string{
		"Total",
		formatInt(report.Total.Files),
		share(report.Total.Lines.Total, report.Total.Lines.Total),
		formatInt(report.Total.Lines.Code),
		formatInt(report.Total.Lines.Comment),
		formatInt(report.Total.Lines.Blank),
		formatInt(report.Total.Lines.Total),
		humanize.IBytes(uint64(report.Total.Bytes)),
	})
	languageTable.Render()

	if options.ShowFiles && len(report.Files) > 0 {
		buffer.WriteString("\n")
		fileTable := newTable(&buffer, []string{"File", "Language", "Code", "Comment", "Blank", "Total"})
		for _, item := range report.Files {
			fileTable.Append([]string{
				item.Path,
				paint(languageStyle, item.Language),
				formatInt(item.Lines.Code),
				formatInt(item.Lines.Comment),
				formatInt(item.Lines.Blank),
				formatInt(item.Lines.Total),
			})
		}
		fileTable.Render()
	}

	if len(report.SkippedFiles) > 0 {
		buffer.WriteString("\n")
		skippedTable := newTable(&buffer, []string{"Skipped file", "Reason", "Detail"})
		for _, item := range report.SkippedFiles {
			skippedTable.Append([]string{item.Path, string(item.Reason), item.Detail})
		}
		skippedTable.Render()
	}

	if len(report.Warnings) > 0 {
		buffer.WriteString("\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&buffer, "%s %s\n", paint(warningStyle, "warning:"), warning)
		}
	}

	if _, err := writer.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// newTable 创建统一风格的无边框表格，首列左对齐、其余列右对齐。
func newTable(writer io.Writer, header []string) *tablewriter.Table {
	alignment := make([]int, len(header))
	for idx := range alignment {
		alignment[idx] = tablewriter.ALIGN_RIGHT
	}
	alignment[0] = tablewriter.ALIGN_LEFT

	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)
	return table
}

// share 计算占比百分比，总数为 0 时输出 0.0%。
func share(part int64, whole int64) string {
	if whole == 0 {
		return "0.0%"
	}
	return strconv.FormatFloat(float64(part)*100/float64(whole), 'f', 1, 64) + "%"
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}
