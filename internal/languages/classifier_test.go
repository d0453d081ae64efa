package languages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallyhawk/internal/model"
)

// profileFor 是测试辅助函数，按文件名从内置注册中心取出语言配置。
func profileFor(t *testing.T, filename string) *Profile {
	t.Helper()

	profile, ok := NewRegistry().Resolve(filename)
	require.True(t, ok, "no profile for %s", filename)
	return profile
}

// classifyText 是测试辅助函数，用于快速分类一段文本并返回统计结果。
func classifyText(t *testing.T, profile *Profile, content string) model.LineCounts {
	t.Helper()

	counts, err := Classify(strings.NewReader(content), profile)
	require.NoError(t, err)
	assert.True(t, counts.Consistent(), "inconsistent counts: %+v", counts)
	return counts
}

func TestClassifyEmptyInput(t *testing.T) {
	counts := classifyText(t, profileFor(t, "x.go"), "")
	assert.Equal(t, model.LineCounts{}, counts)
}

func TestClassifySingleLineComment(t *testing.T) {
	counts := classifyText(t, profileFor(t, "x.py"), "# just a comment")
	assert.Equal(t, model.LineCounts{Total: 1, Comment: 1}, counts)
}

// TestClassifyTrailingComment 验证代码后跟行注释时整行计为 code。
func TestClassifyTrailingComment(t *testing.T) {
	counts := classifyText(t, profileFor(t, "x.js"), "code(); // trailing comment\n")
	assert.Equal(t, model.LineCounts{Total: 1, Code: 1}, counts)
}

// TestClassifyStringContainsCommentToken 验证字符串内的 // 不会误判为注释。
func TestClassifyStringContainsCommentToken(t *testing.T) {
	content := "package main\n" +
		"func main() {\n" +
		"    s := \"hello // world\"\n" +
		"}\n"

	counts := classifyText(t, profileFor(t, "x.go"), content)
	assert.Equal(t, model.LineCounts{Total: 4, Code: 4}, counts)
}

// TestClassifyEscapedQuote 验证转义引号不会提前结束字符串。
func TestClassifyEscapedQuote(t *testing.T) {
	content := "s := \"a\\\" /* not a comment\"\n" +
		"x := 1\n"

	counts := classifyText(t, profileFor(t, "x.go"), content)
	assert.Equal(t, model.LineCounts{Total: 2, Code: 2}, counts)
}

// TestClassifyPythonStringAndComment 验证 Python 字符串中 # 与真实注释的区分。
func TestClassifyPythonStringAndComment(t *testing.T) {
	content := "value = \"hello # world\"\n" +
		"# real comment\n"

	counts := classifyText(t, profileFor(t, "x.py"), content)
	assert.Equal(t, model.LineCounts{Total: 2, Code: 1, Comment: 1}, counts)
}

// TestClassifyPythonTripleQuotedString 验证跨行字符串内的内容计为 code。
func TestClassifyPythonTripleQuotedString(t *testing.T) {
	content := "\"\"\"\n" +
		"doc # not a comment\n" +
		"\"\"\"\n" +
		"x = 1\n"

	counts := classifyText(t, profileFor(t, "x.py"), content)
	assert.Equal(t, model.LineCounts{Total: 4, Code: 4}, counts)
}

func TestClassifyBlockComment(t *testing.T) {
	content := "/*\n" +
		" * header\n" +
		"\n" +
		" */\n" +
		"int main() { return 0; }\n"

	counts := classifyText(t, profileFor(t, "x.c"), content)
	assert.Equal(t, model.LineCounts{Total: 5, Code: 1, Comment: 4}, counts)
}

// TestClassifyCodeAfterBlockEnd 验证块注释结束后同行还有代码时计为 code。
func TestClassifyCodeAfterBlockEnd(t *testing.T) {
	content := "/* start\n" +
		"end */ x = 1;\n" +
		"/* a */ /* b */\n" +
		"/* a */ y = 2;\n"

	counts := classifyText(t, profileFor(t, "x.java"), content)
	assert.Equal(t, model.LineCounts{Total: 4, Code: 2, Comment: 2}, counts)
}

// TestClassifyCodeBeforeUnclosedBlock 验证代码后开启块注释：本行 code，后续行 comment。
func TestClassifyCodeBeforeUnclosedBlock(t *testing.T) {
	content := "int x = 1; /* starts here\n" +
		"still comment\n" +
		"*/\n"

	counts := classifyText(t, profileFor(t, "x.c"), content)
	assert.Equal(t, model.LineCounts{Total: 3, Code: 1, Comment: 2}, counts)
}

// TestClassifyUnterminatedBlockComment 验证文件末尾未闭合的块注释不会报错。
func TestClassifyUnterminatedBlockComment(t *testing.T) {
	content := "int x;\n" +
		"/* open\n" +
		"still\n" +
		"\n" +
		"more"

	counts := classifyText(t, profileFor(t, "x.c"), content)
	assert.Equal(t, model.LineCounts{Total: 5, Code: 1, Comment: 4}, counts)
}

// TestClassifyNestedBlockComment 对比支持与不支持嵌套块注释的语言。
func TestClassifyNestedBlockComment(t *testing.T) {
	content := "/* outer /* inner */ still outer */\n" +
		"fn main() {}\n"

	rust := classifyText(t, profileFor(t, "x.rs"), content)
	assert.Equal(t, model.LineCounts{Total: 2, Code: 1, Comment: 1}, rust)

	// Go 不支持嵌套：第一个 */ 就结束注释，剩余的 "still outer */" 是 code。
	golang := classifyText(t, profileFor(t, "x.go"), content)
	assert.Equal(t, model.LineCounts{Total: 2, Code: 2}, golang)
}

// TestClassifyLongestMarkerWins 验证 Lua 的 --[[ 优先于 --。
func TestClassifyLongestMarkerWins(t *testing.T) {
	content := "--[[ block\n" +
		"still ]]\n" +
		"print(1) -- line\n"

	counts := classifyText(t, profileFor(t, "x.lua"), content)
	assert.Equal(t, model.LineCounts{Total: 3, Code: 1, Comment: 2}, counts)
}

func TestClassifyRubyBeginEnd(t *testing.T) {
	content := "=begin\n" +
		"comment body\n" +
		"=end\n" +
		"puts \"ok\"\n"

	counts := classifyText(t, profileFor(t, "x.rb"), content)
	assert.Equal(t, model.LineCounts{Total: 4, Code: 1, Comment: 3}, counts)
}

// TestClassifyLineStartBlockMarkers 验证 =begin/=end、=pod/=cut 只在行首生效。
func TestClassifyLineStartBlockMarkers(t *testing.T) {
	ruby := "x = 1 =begin\n" +
		"puts x\n" +
		"=begin\n" +
		"  =end still inside\n" +
		"=end\n" +
		"puts 2\n"
	counts := classifyText(t, profileFor(t, "x.rb"), ruby)
	assert.Equal(t, model.LineCounts{Total: 6, Code: 3, Comment: 3}, counts)

	perl := "print 1; # =pod\n" +
		"=pod\n" +
		"docs =cut\n" +
		"=cut\n" +
		"print 2;\n"
	counts = classifyText(t, profileFor(t, "x.pl"), perl)
	assert.Equal(t, model.LineCounts{Total: 5, Code: 2, Comment: 3}, counts)
}

// TestClassifyRustMultilineString 验证 Rust 普通字符串可以跨行，其中的注释标记仍属于字符串。
func TestClassifyRustMultilineString(t *testing.T) {
	content := "let s = \"first\n" +
		"// not a comment\n" +
		"\";\n" +
		"// real comment\n"

	counts := classifyText(t, profileFor(t, "x.rs"), content)
	assert.Equal(t, model.LineCounts{Total: 4, Code: 3, Comment: 1}, counts)
}

func TestClassifySQLComments(t *testing.T) {
	content := "SELECT 1; -- trailing\n" +
		"-- line comment\n" +
		"SELECT '--not a comment';\n"

	counts := classifyText(t, profileFor(t, "x.sql"), content)
	assert.Equal(t, model.LineCounts{Total: 3, Code: 2, Comment: 1}, counts)
}

// TestClassifyLineTerminators 验证 \n、\r\n、\r 的统计结果一致。
func TestClassifyLineTerminators(t *testing.T) {
	profile := profileFor(t, "x.py")
	lines := []string{"print(1)", "# comment", "", "x = 2"}
	expected := model.LineCounts{Total: 4, Code: 2, Comment: 1, Blank: 1}

	for _, terminator := range []string{"\n", "\r\n", "\r"} {
		content := strings.Join(lines, terminator) + terminator
		assert.Equal(t, expected, classifyText(t, profile, content), "terminator %q", terminator)
	}
}

// TestClassifyLastLineWithoutTerminator 验证最后一行没有换行符时依然计数。
func TestClassifyLastLineWithoutTerminator(t *testing.T) {
	counts := classifyText(t, profileFor(t, "x.go"), "package main\nfunc main() {}")
	assert.Equal(t, model.LineCounts{Total: 2, Code: 2}, counts)

	counts = classifyText(t, profileFor(t, "x.go"), "\n")
	assert.Equal(t, model.LineCounts{Total: 1, Blank: 1}, counts)
}

// TestClassifyWithoutProfile 验证未知语言只区分 code 与 blank。
func TestClassifyWithoutProfile(t *testing.T) {
	counts := classifyText(t, nil, "hello\n\n   \n# not special\n")
	assert.Equal(t, model.LineCounts{Total: 4, Code: 2, Blank: 2}, counts)
}

func TestClassifyByteOrderMark(t *testing.T) {
	counts := classifyText(t, profileFor(t, "x.py"), "\xEF\xBB\xBF# comment\n")
	assert.Equal(t, model.LineCounts{Total: 1, Comment: 1}, counts)
}

func BenchmarkClassify(b *testing.B) {
	profile, _ := NewRegistry().Resolve("bench.go")

	var builder strings.Builder
	builder.WriteString("package main\n\n")
	for i := 0; i < 2000; i++ {
		builder.WriteString("var value = 1 // inline comment\n")
		builder.WriteString("/* block comment */\n")
		builder.WriteString("func f() { _ = \"// not a comment\" }\n")
	}
	content := builder.String()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Classify(strings.NewReader(content), profile); err != nil {
			b.Fatalf("classify failed: %v", err)
		}
	}
}
