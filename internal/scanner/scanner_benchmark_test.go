package scanner

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"tallyhawk/internal/languages"
)

// benchmarkTree 构造一个接近真实仓库的内存目录：
// 多层 .gitignore、被整体裁剪的 node_modules、二进制资源、未识别语言的文本和少量 CLI 排除目录。
func benchmarkTree() fstest.MapFS {
	tree := fstest.MapFS{
		".gitignore":          file("node_modules/\n*.log\n/dist/\n"),
		"services/.gitignore": file("*.gen.go\n!keep.gen.go\n"),
		".git/HEAD":           file("ref: refs/heads/main\n"),
	}

	for svc := 0; svc < 8; svc++ {
		for i := 0; i < 40; i++ {
			dir := fmt.Sprintf("services/svc%d/pkg%d", svc, i%5)
			tree[fmt.Sprintf("%s/handler%d.go", dir, i)] = file("package pkg\n\n// Handle 处理请求。\nfunc Handle() string { return \"/* not a comment */\" }\n")
			tree[fmt.Sprintf("%s/model%d.gen.go", dir, i)] = file("package pkg\n")
			tree[fmt.Sprintf("%s/run%d.log", dir, i)] = file("started\n")
		}
		tree[fmt.Sprintf("services/svc%d/keep.gen.go", svc)] = file("package svc\n")
	}

	for i := 0; i < 200; i++ {
		tree[fmt.Sprintf("web/src/view%d.ts", i)] = file("const a = `multi\nline`; // tail\n/* block */\n")
		tree[fmt.Sprintf("web/assets/icon%d.png", i)] = file("\x89PNG\r\n")
		tree[fmt.Sprintf("web/data/blob%d.dat", i)] = file("head\x00tail")
		tree[fmt.Sprintf("docs/note%d.txt", i)] = file("plain text\n\n")
	}

	for i := 0; i < 3000; i++ {
		tree[fmt.Sprintf("node_modules/dep%d/index.js", i)] = file("module.exports = 1;\n")
		tree[fmt.Sprintf("dist/chunk%d.js", i)] = file("var a=1;\n")
	}

	for i := 0; i < 50; i++ {
		tree[fmt.Sprintf("testdata/fixture%d.py", i)] = file("print(1)\n")
	}

	return tree
}

func benchmarkScanFS(b *testing.B, workers int) {
	b.Helper()

	tree := benchmarkTree()
	service := NewService(languages.NewRegistry(), Options{
		Workers:            workers,
		RespectIgnoreFiles: true,
		ExcludePatterns:    []string{"testdata"},
	})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		report, err := service.ScanFS(ctx, tree, "/bench")
		if err != nil {
			b.Fatalf("scan failed: %v", err)
		}
		if report.Skipped == 0 || report.Total.Files == 0 {
			b.Fatalf("unexpected report: files=%d skipped=%d", report.Total.Files, report.Skipped)
		}
	}
}

// BenchmarkScanFSSequential 衡量单 worker 下遍历、过滤与分类的整体开销。
func BenchmarkScanFSSequential(b *testing.B) {
	benchmarkScanFS(b, 1)
}

// BenchmarkScanFSParallel 衡量多 worker 时的调度与聚合开销。
func BenchmarkScanFSParallel(b *testing.B) {
	benchmarkScanFS(b, 8)
}

// BenchmarkScanFSNoIgnoreFiles 作为对照：不读取忽略文件时被裁剪的子树也会被遍历和分类。
func BenchmarkScanFSNoIgnoreFiles(b *testing.B) {
	tree := benchmarkTree()
	service := NewService(languages.NewRegistry(), Options{Workers: 8})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.ScanFS(ctx, tree, "/bench"); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
