package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"tallyhawk/internal/languages"
)

// PrintLanguages 输出已注册语言及其后缀和精确文件名。
func PrintLanguages(writer io.Writer, items []languages.LanguageDescriptor) error {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Language", "Extensions", "Filenames"})
	for _, item := range items {
		table.Append([]string{item.Name, strings.Join(item.Extensions, ", "), strings.Join(item.Filenames, ", ")})
	}
	table.Render()

	if _, err := writer.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("write languages: %w", err)
	}
	return nil
}
