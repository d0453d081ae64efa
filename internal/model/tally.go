package model

import "sort"

// Tally 是扫描过程中唯一可变的累加器。
//
// 约束说明：
// - 只允许单个 goroutine 写入（扫描器的聚合点）
// - Merge 满足结合律与交换律，累加顺序不影响最终 Report
// - 同一路径在一次扫描中只会出现一次，由遍历器保证
type Tally struct {
	languages map[string]*LanguageStats
	files     map[string]FileStat
	skipped   map[string]SkippedFile
	warnings  map[string]struct{}
}

// NewTally 创建空累加器。
func NewTally() *Tally {
	return &Tally{
		languages: make(map[string]*LanguageStats),
		files:     make(map[string]FileStat),
		skipped:   make(map[string]SkippedFile),
		warnings:  make(map[string]struct{}),
	}
}

// Add 累加一个文件的统计值。
func (t *Tally) Add(stat FileStat) {
	language := stat.Language
	if language == "" {
		language = UnknownLanguage
		stat.Language = language
	}

	summary := t.language(language)
	summary.Files++
	summary.Lines.Add(stat.Lines)
	summary.Bytes += stat.Bytes

	t.files[stat.Path] = stat
}

// AddSkipped 记录一个被跳过的文件，它不会进入任何行数统计。
func (t *Tally) AddSkipped(item SkippedFile) {
	t.skipped[item.Path] = item
}

// Warn 记录一条非致命告警（例如被丢弃的忽略文件）。
func (t *Tally) Warn(message string) {
	t.warnings[message] = struct{}{}
}

// Merge 把另一个累加器的内容并入当前对象。
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}

	for name, item := range other.languages {
		summary := t.language(name)
		summary.Files += item.Files
		summary.Lines.Add(item.Lines)
		summary.Bytes += item.Bytes
	}
	for path, item := range other.files {
		t.files[path] = item
	}
	for path, item := range other.skipped {
		t.skipped[path] = item
	}
	for message := range other.warnings {
		t.warnings[message] = struct{}{}
	}
}

// Report 冻结当前累加结果，输出排序稳定的只读 Report。
// 总计由语言级汇总求和得到，保证与各语言条目一致。
func (t *Tally) Report(root string) Report {
	report := Report{
		Root:         root,
		Languages:    make([]LanguageStats, 0, len(t.languages)),
		Files:        make([]FileStat, 0, len(t.files)),
		SkippedFiles: make([]SkippedFile, 0, len(t.skipped)),
		Warnings:     make([]string, 0, len(t.warnings)),
	}

	for _, item := range t.languages {
		report.Languages = append(report.Languages, *item)
		report.Total.Files += item.Files
		report.Total.Lines.Add(item.Lines)
		report.Total.Bytes += item.Bytes
	}
	sort.Slice(report.Languages, func(i int, j int) bool {
		return report.Languages[i].Language < report.Languages[j].Language
	})

	for _, item := range t.files {
		report.Files = append(report.Files, item)
	}
	sort.Slice(report.Files, func(i int, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})

	for _, item := range t.skipped {
		report.SkippedFiles = append(report.SkippedFiles, item)
	}
	sort.Slice(report.SkippedFiles, func(i int, j int) bool {
		return report.SkippedFiles[i].Path < report.SkippedFiles[j].Path
	})
	report.Skipped = int64(len(report.SkippedFiles))

	for message := range t.warnings {
		report.Warnings = append(report.Warnings, message)
	}
	sort.Strings(report.Warnings)

	return report
}

func (t *Tally) language(name string) *LanguageStats {
	summary, ok := t.languages[name]
	if !ok {
		summary = &LanguageStats{Language: name}
		t.languages[name] = summary
	}
	return summary
}
