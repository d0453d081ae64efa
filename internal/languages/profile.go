package languages

import "sort"

// BlockComment 描述一对块注释起止标记，例如 /* 与 */。
// LineStart 为 true 时起止标记都必须位于行首（Ruby 的 =begin/=end）。
type BlockComment struct {
	Start     string
	End       string
	LineStart bool
}

// StringDelimiter 描述一种字符串字面量。
// 字符串内的注释标记不会被当作注释。
//
// - Multiline 为 true 时字符串可以跨行（Python 的 """、Go 的反引号）
// - Raw 为 true 时不处理反斜杠转义
type StringDelimiter struct {
	Start     string
	End       string
	Multiline bool
	Raw       bool
}

// Profile 是单个语言的注释语法与识别规则。
// 由 Registry 在初始化时构建，之后只读。
type Profile struct {
	Name          string
	Extensions    []string
	Filenames     []string
	LineComments  []string
	BlockComments []BlockComment
	NestedBlocks  bool
	Strings       []StringDelimiter

	tokens []token
}

type tokenKind int

const (
	tokenLineComment tokenKind = iota
	tokenBlockStart
	tokenString
)

// token 是分类器在一行中逐位置尝试匹配的起始标记。
type token struct {
	text  string
	kind  tokenKind
	block BlockComment
	str   StringDelimiter
}

// compile 预先计算按长度降序排列的起始标记，
// 保证同一位置上最长的标记优先（例如 Lua 的 --[[ 先于 --）。
func (p *Profile) compile() {
	tokens := make([]token, 0, len(p.LineComments)+len(p.BlockComments)+len(p.Strings))
	for _, marker := range p.LineComments {
		tokens = append(tokens, token{text: marker, kind: tokenLineComment})
	}
	for _, block := range p.BlockComments {
		tokens = append(tokens, token{text: block.Start, kind: tokenBlockStart, block: block})
	}
	for _, str := range p.Strings {
		tokens = append(tokens, token{text: str.Start, kind: tokenString, str: str})
	}

	sort.SliceStable(tokens, func(i int, j int) bool {
		return len(tokens[i].text) > len(tokens[j].text)
	})
	p.tokens = tokens
}

// match 返回 line[pos:] 处最长的起始标记。
func (p *Profile) match(line string, pos int) (token, bool) {
	rest := line[pos:]
	for _, candidate := range p.tokens {
		if candidate.kind == tokenBlockStart && candidate.block.LineStart && pos != 0 {
			continue
		}
		if candidate.text != "" && len(rest) >= len(candidate.text) && rest[:len(candidate.text)] == candidate.text {
			return candidate, true
		}
	}
	return token{}, false
}
