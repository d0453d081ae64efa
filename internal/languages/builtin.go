package languages

var (
	cBlock    = []BlockComment{{Start: "/*", End: "*/"}}
	xmlBlock  = []BlockComment{{Start: "<!--", End: "-->"}}
	slashLine = []string{"//"}
	hashLine  = []string{"#"}

	dq       = StringDelimiter{Start: `"`, End: `"`}
	dqMulti  = StringDelimiter{Start: `"`, End: `"`, Multiline: true}
	sq       = StringDelimiter{Start: `'`, End: `'`}
	backtick = StringDelimiter{Start: "`", End: "`", Multiline: true, Raw: true}
	tripleDQ = StringDelimiter{Start: `"""`, End: `"""`, Multiline: true}
	tripleSQ = StringDelimiter{Start: `'''`, End: `'''`, Multiline: true}
)

// builtinProfiles 返回内置语言表。
// 每次调用都会构造新切片，Registry 持有自己的副本。
func builtinProfiles() []*Profile {
	return []*Profile{
		{Name: "Go", Extensions: []string{".go"}, LineComments: slashLine, BlockComments: cBlock,
			Strings: []StringDelimiter{dq, sq, backtick}},
		{Name: "Rust", Extensions: []string{".rs"}, LineComments: slashLine, BlockComments: cBlock, NestedBlocks: true,
			Strings: []StringDelimiter{dqMulti}},
		{Name: "C", Extensions: []string{".c", ".h"}, LineComments: slashLine, BlockComments: cBlock,
			Strings: []StringDelimiter{dq, sq}},
		{Name: "C++", Extensions: []string{".cpp", ".cxx", ".cc", ".hpp", ".hxx", ".hh"}, LineComments: slashLine,
			BlockComments: cBlock, Strings: []StringDelimiter{dq, sq}},
		{Name: "C#", Extensions: []string{".cs"}, LineComments: slashLine, BlockComments: cBlock,
			Strings: []StringDelimiter{dq, sq}},
		{Name: "Java", Extensions: []string{".java"}, LineComments: slashLine, BlockComments: cBlock,
			Strings: []StringDelimiter{tripleDQ, dq, sq}},
		{Name: "Kotlin", Extensions: []string{".kt", ".kts"}, LineComments: slashLine, BlockComments: cBlock,
			NestedBlocks: true, Strings: []StringDelimiter{tripleDQ, dq, sq}},
		{Name: "Scala", Extensions: []string{".scala", ".sc"}, LineComments: slashLine, BlockComments: cBlock,
			NestedBlocks: true, Strings: []StringDelimiter{tripleDQ, dq}},
		{Name: "Swift", Extensions: []string{".swift"}, LineComments: slashLine, BlockComments: cBlock,
			NestedBlocks: true, Strings: []StringDelimiter{tripleDQ, dq}},
		{Name: "Dart", Extensions: []string{".dart"}, LineComments: slashLine, BlockComments: cBlock,
			Strings: []StringDelimiter{tripleDQ, tripleSQ, dq, sq}},
		{Name: "JavaScript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, LineComments: slashLine,
			BlockComments: cBlock, Strings: []StringDelimiter{dq, sq, backtick}},
		{Name: "TypeScript", Extensions: []string{".ts", ".tsx", ".mts", ".cts"}, LineComments: slashLine,
			BlockComments: cBlock, Strings: []StringDelimiter{dq, sq, backtick}},
		{Name: "TypeScript Typings", Extensions: []string{".d.ts"}, LineComments: slashLine,
			BlockComments: cBlock, Strings: []StringDelimiter{dq, sq, backtick}},
		{Name: "PHP", Extensions: []string{".php"}, LineComments: []string{"//", "#"}, BlockComments: cBlock,
			Strings: []StringDelimiter{dq, sq}},
		{Name: "Python", Extensions: []string{".py", ".pyi", ".pyx", ".pyw"}, LineComments: hashLine,
			Strings: []StringDelimiter{tripleDQ, tripleSQ, dq, sq}},
		{Name: "Ruby", Extensions: []string{".rb", ".rake", ".gemspec"}, Filenames: []string{"Rakefile", "Gemfile"},
			LineComments: hashLine, BlockComments: []BlockComment{{Start: "=begin", End: "=end", LineStart: true}},
			Strings: []StringDelimiter{dq, sq}},
		{Name: "Shell", Extensions: []string{".sh", ".bash", ".zsh", ".fish", ".ksh"}, LineComments: hashLine,
			Strings: []StringDelimiter{dq, {Start: `'`, End: `'`, Raw: true}}},
		{Name: "Perl", Extensions: []string{".pl", ".pm"}, LineComments: hashLine,
			BlockComments: []BlockComment{{Start: "=pod", End: "=cut", LineStart: true}}, Strings: []StringDelimiter{dq, sq}},
		{Name: "R", Extensions: []string{".r"}, LineComments: hashLine, Strings: []StringDelimiter{dq, sq}},
		{Name: "Lua", Extensions: []string{".lua"}, LineComments: []string{"--"},
			BlockComments: []BlockComment{{Start: "--[[", End: "]]"}}, Strings: []StringDelimiter{dq, sq}},
		{Name: "Haskell", Extensions: []string{".hs"}, LineComments: []string{"--"},
			BlockComments: []BlockComment{{Start: "{-", End: "-}"}}, NestedBlocks: true,
			Strings: []StringDelimiter{dq}},
		{Name: "SQL", Extensions: []string{".sql"}, LineComments: []string{"--"}, BlockComments: cBlock,
			Strings: []StringDelimiter{sq, dq}},
		{Name: "HTML", Extensions: []string{".html", ".htm"}, BlockComments: xmlBlock},
		{Name: "XML", Extensions: []string{".xml", ".xsd", ".xsl", ".svg"}, BlockComments: xmlBlock},
		{Name: "Markdown", Extensions: []string{".md", ".markdown"}, BlockComments: xmlBlock},
		{Name: "reStructuredText", Extensions: []string{".rst"}, LineComments: []string{".."}},
		{Name: "CSS", Extensions: []string{".css"}, BlockComments: cBlock, Strings: []StringDelimiter{dq, sq}},
		{Name: "Sass", Extensions: []string{".scss", ".sass", ".less"}, LineComments: slashLine,
			BlockComments: cBlock, Strings: []StringDelimiter{dq, sq}},
		{Name: "JSON", Extensions: []string{".json"}, Strings: []StringDelimiter{dq}},
		{Name: "YAML", Extensions: []string{".yaml", ".yml"}, LineComments: hashLine,
			Strings: []StringDelimiter{dq, sq}},
		{Name: "TOML", Extensions: []string{".toml"}, LineComments: hashLine,
			Strings: []StringDelimiter{tripleDQ, tripleSQ, dq, {Start: `'`, End: `'`, Raw: true}}},
		{Name: "Makefile", Extensions: []string{".mk"}, Filenames: []string{"Makefile", "makefile", "GNUmakefile"},
			LineComments: hashLine},
		{Name: "Dockerfile", Extensions: []string{".dockerfile"}, Filenames: []string{"Dockerfile", "Containerfile"},
			LineComments: hashLine},
		{Name: "CMake", Extensions: []string{".cmake"}, Filenames: []string{"CMakeLists.txt"}, LineComments: hashLine,
			Strings: []StringDelimiter{dq}},
	}
}

// binaryExtensions 是无需读取内容即可判定为二进制的后缀。
var binaryExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".lib": {}, ".o": {}, ".obj": {},
	".class": {}, ".jar": {}, ".pyc": {}, ".wasm": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".webp": {}, ".icns": {},
	".mp3": {}, ".wav": {}, ".ogg": {}, ".flac": {}, ".aac": {},
	".mp4": {}, ".avi": {}, ".mkv": {}, ".mov": {}, ".wmv": {}, ".flv": {},
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {},
	".db": {}, ".sqlite": {}, ".sqlite3": {},
}
