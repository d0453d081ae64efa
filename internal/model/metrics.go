// Package model 定义 tallyhawk 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// UnknownLanguage 是没有匹配到任何语言配置的文件所归属的分组名。
const UnknownLanguage = "Unknown"

// LineCounts 表示一组行级统计值。
//
// 注意：
// - 每一行只会落入 code/comment/blank 中的一类
// - 因此始终满足 Total == Code + Comment + Blank
type LineCounts struct {
	Total   int64 `json:"total"`
	Code    int64 `json:"code"`
	Comment int64 `json:"comment"`
	Blank   int64 `json:"blank"`
}

// Add 将另一个统计结果叠加到当前对象。
func (c *LineCounts) Add(other LineCounts) {
	c.Total += other.Total
	c.Code += other.Code
	c.Comment += other.Comment
	c.Blank += other.Blank
}

// Consistent 检查 Total 是否等于三类行数之和。
func (c LineCounts) Consistent() bool {
	return c.Total == c.Code+c.Comment+c.Blank
}

// FileStat 表示单文件扫描结果。
// Path 统一使用相对扫描根目录、以 / 分隔的形式。
type FileStat struct {
	Path     string     `json:"path"`
	Language string     `json:"language"`
	Lines    LineCounts `json:"lines"`
	Bytes    int64      `json:"bytes"`
}

// LanguageStats 表示某个语言的聚合结果。
type LanguageStats struct {
	Language   string     `json:"language"`
	Extensions []string   `json:"extensions,omitempty"`
	Files      int64      `json:"files"`
	Lines      LineCounts `json:"lines"`
	Bytes      int64      `json:"bytes"`
}

// SkipReason 说明某个文件为什么没有参与统计。
type SkipReason string

const (
	// SkipBinary 表示文件被判定为二进制。
	SkipBinary SkipReason = "binary"
	// SkipUnreadable 表示文件无法读取或分析失败。
	SkipUnreadable SkipReason = "unreadable"
)

// SkippedFile 记录单个被跳过的文件。
// 设计为“错误不阻断全量扫描”，便于大仓库分析时容错。
type SkippedFile struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// TotalStats 表示项目级总计信息。
// 在 LineCounts 基础上额外增加 Files 与 Bytes 字段。
type TotalStats struct {
	Files int64      `json:"files"`
	Lines LineCounts `json:"lines"`
	Bytes int64      `json:"bytes"`
}

// Report 是一次扫描的完整、只读结果。
// 包含语言级汇总、文件级明细、全局总计、跳过列表和告警。
type Report struct {
	Root         string          `json:"root"`
	Languages    []LanguageStats `json:"languages"`
	Files        []FileStat      `json:"files"`
	Total        TotalStats      `json:"total"`
	Skipped      int64           `json:"skipped"`
	SkippedFiles []SkippedFile   `json:"skipped_files"`
	Warnings     []string        `json:"warnings"`
}

// Language 按名称查找语言汇总。
func (r Report) Language(name string) (LanguageStats, bool) {
	for _, item := range r.Languages {
		if item.Language == name {
			return item, true
		}
	}
	return LanguageStats{}, false
}
