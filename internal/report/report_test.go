package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallyhawk/internal/model"
)

func sampleReport() model.Report {
	python := model.LineCounts{Total: 3, Code: 1, Comment: 1, Blank: 1}
	unknown := model.LineCounts{Total: 1, Code: 1}

	return model.Report{
		Root: "/repo",
		Languages: []model.LanguageStats{
			{Language: "Python", Extensions: []string{".py"}, Files: 1, Lines: python, Bytes: 20},
			{Language: model.UnknownLanguage, Files: 1, Lines: unknown, Bytes: 6},
		},
		Files: []model.FileStat{
			{Path: "a.py", Language: "Python", Lines: python, Bytes: 20},
			{Path: "b.txt", Language: model.UnknownLanguage, Lines: unknown, Bytes: 6},
		},
		Total: model.TotalStats{
			Files: 2,
			Lines: model.LineCounts{Total: 4, Code: 2, Comment: 1, Blank: 1},
			Bytes: 26,
		},
		Skipped:      1,
		SkippedFiles: []model.SkippedFile{{Path: "logo.png", Reason: model.SkipBinary}},
		Warnings:     []string{"malformed ignore file: .gitignore: not a text file"},
	}
}

func TestParseFormat(t *testing.T) {
	for raw, expected := range map[string]Format{"table": FormatTable, "JSON": FormatJSON, " csv ": FormatCSV} {
		format, err := ParseFormat(raw)
		require.NoError(t, err)
		assert.Equal(t, expected, format)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, sampleReport(), TableOptions{}))
	output := buffer.String()

	assert.Contains(t, output, "/repo")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "75.0%")
	assert.Contains(t, output, "25.0%")
	assert.Contains(t, output, "100.0%")
	assert.Contains(t, output, "TOTAL")
	assert.Contains(t, output, "20 B")
	assert.Contains(t, output, "logo.png")
	assert.Contains(t, output, "warning: malformed ignore file")
	assert.NotContains(t, output, "a.py")
	assert.NotContains(t, output, "\x1b[")
}

func TestPrintTableWithFiles(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, sampleReport(), TableOptions{ShowFiles: true}))

	assert.Contains(t, buffer.String(), "a.py")
	assert.Contains(t, buffer.String(), "b.txt")
}

func TestPrintTableEmptyReport(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, model.Report{Root: "/empty"}, TableOptions{}))

	assert.Contains(t, buffer.String(), "0.0%")
	assert.NotContains(t, buffer.String(), "warning:")
}

func TestPrintJSON(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintJSON(&buffer, sampleReport()))

	var decoded model.Report
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), decoded)
	assert.True(t, strings.HasSuffix(buffer.String(), "}\n"))
}

func TestPrintJSONEmptyListsAreArrays(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintJSON(&buffer, model.Report{Root: "/empty"}))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &raw))
	for _, key := range []string{"languages", "files", "skipped_files", "warnings"} {
		assert.Equal(t, []any{}, raw[key], key)
	}
}

// TestWriteJSONFile 验证导出路径的父目录会被自动创建。
func TestWriteJSONFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "out", "report.json")
	require.NoError(t, WriteJSONFile(target, sampleReport()))

	content, err := os.ReadFile(target)
	require.NoError(t, err)

	var decoded model.Report
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, int64(2), decoded.Total.Files)
}

func TestPrintCSV(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintCSV(&buffer, sampleReport()))

	expected := strings.Join([]string{
		"language,files,total,code,comment,blank,bytes",
		"Python,1,3,1,1,1,20",
		"Unknown,1,1,1,0,0,6",
		"TOTAL,2,4,2,1,1,26",
		"",
	}, "\n")
	assert.Equal(t, expected, buffer.String())
}
