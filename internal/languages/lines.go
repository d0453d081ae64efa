package languages

import (
	"bytes"

	"tallyhawk/internal/model"
)

// maxLineBytes 是单行允许的最大长度，超出时分类失败，文件会被记为 unreadable。
const maxLineBytes = 64 * 1024 * 1024

// lineKind 是单行的分类结果。
type lineKind int

const (
	lineBlank lineKind = iota
	lineCode
	lineComment
)

// scanLines 是 bufio.SplitFunc，按 \n、\r\n、\r 三种换行符切分。
// 返回的行不包含换行符；文件末尾没有换行符的最后一行同样会返回。
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if idx := bytes.IndexAny(data, "\r\n"); idx >= 0 {
		if data[idx] == '\n' {
			return idx + 1, data[:idx], nil
		}
		if idx+1 < len(data) {
			if data[idx+1] == '\n' {
				return idx + 2, data[:idx], nil
			}
			return idx + 1, data[:idx], nil
		}
		// \r 落在缓冲区末尾，需要更多数据才能判断后面是否紧跟 \n。
		if !atEOF {
			return 0, nil, nil
		}
		return idx + 1, data[:idx], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// applyLineKind 根据分类结果更新统计值，每次调用 Total 固定 +1。
func applyLineKind(counts *model.LineCounts, kind lineKind) {
	counts.Total++

	switch kind {
	case lineCode:
		counts.Code++
	case lineComment:
		counts.Comment++
	default:
		counts.Blank++
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}
