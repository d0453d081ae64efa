package ignore

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

// BenchmarkFilterMatchDeepPath 衡量深层路径逐级回溯父目录忽略文件的开销。
func BenchmarkFilterMatchDeepPath(b *testing.B) {
	fsys := fstest.MapFS{".gitignore": {Data: []byte("*.log\nbuild/\n!keep.log\n")}}

	segments := make([]string, 0, 12)
	for depth := 0; depth < 12; depth++ {
		segments = append(segments, fmt.Sprintf("level%d", depth))
		fsys[strings.Join(segments, "/")+"/.gitignore"] = &fstest.MapFile{Data: []byte(fmt.Sprintf("*.tmp%d\n/gen%d/\n", depth, depth))}
	}

	filter, err := NewFilter(Options{RespectIgnoreFiles: true, Patterns: []string{"vendor", "**/*.pb.go"}})
	if err != nil {
		b.Fatalf("new filter failed: %v", err)
	}
	dir := "."
	if errs := filter.LoadDir(fsys, dir); len(errs) > 0 {
		b.Fatalf("load %s failed: %v", dir, errs)
	}
	for idx := range segments {
		dir = strings.Join(segments[:idx+1], "/")
		if errs := filter.LoadDir(fsys, dir); len(errs) > 0 {
			b.Fatalf("load %s failed: %v", dir, errs)
		}
	}

	paths := []string{
		dir + "/main.go",
		dir + "/debug.log",
		dir + "/keep.log",
		dir + "/api.pb.go",
		dir + "/cache.tmp3",
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, p := range paths {
			filter.Accept(p, false)
		}
	}
}
