package languages

import (
	"bufio"
	"io"
	"strings"

	"tallyhawk/internal/model"
)

// utf8BOM 出现在文件开头时不参与分类。
const utf8BOM = "\xEF\xBB\xBF"

// Classify 流式读取内容并统计 code/comment/blank 行数。
// profile 为 nil 时不做注释识别：所有非空白行都计为 code。
func Classify(reader io.Reader, profile *Profile) (model.LineCounts, error) {
	var counts model.LineCounts

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanLines)

	state := &classifier{profile: profile}
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		applyLineKind(&counts, state.classifyLine(line))
	}
	if err := scanner.Err(); err != nil {
		return counts, err
	}

	return counts, nil
}

// classifier 保存跨行状态：
// - blockDepth > 0 表示处于块注释内部，block 为当前块注释标记
// - stringOpen 表示处于跨行字符串内部，str 为当前字符串定界符
type classifier struct {
	profile    *Profile
	blockDepth int
	block      BlockComment
	stringOpen bool
	str        StringDelimiter
}

// classifyLine 扫描单行并更新状态。
//
// 判定规则：
// - 注释之外出现任何非空白字符（包括字符串内容）即为 code
// - 否则只要接触到注释（包括从上一行延续的块注释）即为 comment
// - 其余为 blank
func (c *classifier) classifyLine(line string) lineKind {
	if c.profile == nil {
		if strings.TrimSpace(line) == "" {
			return lineBlank
		}
		return lineCode
	}

	hasCode := c.stringOpen
	hasComment := c.blockDepth > 0

	for idx := 0; idx < len(line); {
		if c.blockDepth > 0 {
			idx = c.scanBlock(line, idx)
			continue
		}

		if c.stringOpen {
			hasCode = true
			idx = c.scanString(line, idx)
			continue
		}

		if isSpace(line[idx]) {
			idx++
			continue
		}

		matched, ok := c.profile.match(line, idx)
		if !ok {
			hasCode = true
			idx++
			continue
		}

		switch matched.kind {
		case tokenLineComment:
			hasComment = true
			idx = len(line)
		case tokenBlockStart:
			hasComment = true
			c.blockDepth = 1
			c.block = matched.block
			idx += len(matched.text)
		case tokenString:
			hasCode = true
			c.stringOpen = true
			c.str = matched.str
			idx += len(matched.text)
		}
	}

	// 单行字符串未闭合时在行尾结束，避免吞掉后续行。
	if c.stringOpen && !c.str.Multiline {
		c.stringOpen = false
	}

	switch {
	case hasCode:
		return lineCode
	case hasComment:
		return lineComment
	default:
		return lineBlank
	}
}

// scanBlock 在块注释内部前进一步，返回新的位置。
func (c *classifier) scanBlock(line string, idx int) int {
	rest := line[idx:]
	if c.profile.NestedBlocks && strings.HasPrefix(rest, c.block.Start) {
		c.blockDepth++
		return idx + len(c.block.Start)
	}
	if strings.HasPrefix(rest, c.block.End) && (!c.block.LineStart || idx == 0) {
		c.blockDepth--
		return idx + len(c.block.End)
	}
	return idx + 1
}

// scanString 在字符串内部前进一步，返回新的位置。
func (c *classifier) scanString(line string, idx int) int {
	if !c.str.Raw && line[idx] == '\\' {
		return idx + 2
	}
	if strings.HasPrefix(line[idx:], c.str.End) {
		c.stringOpen = false
		return idx + len(c.str.End)
	}
	return idx + 1
}
