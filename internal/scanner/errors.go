package scanner

import (
	"errors"
	"fmt"
	"io/fs"
)

// 致命错误：出现时扫描中止，不返回任何 Report。
var (
	// ErrRootNotFound 表示扫描根路径不存在。
	ErrRootNotFound = errors.New("scan root not found")
	// ErrRootPermissionDenied 表示没有权限读取扫描根路径。
	ErrRootPermissionDenied = errors.New("scan root permission denied")
	// ErrCancelled 表示调用方取消了扫描，部分结果已丢弃。
	ErrCancelled = errors.New("scan cancelled")
)

// rootError 把根路径上的文件系统错误归类为对应的致命错误。
func rootError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrRootNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrRootPermissionDenied, path)
	default:
		return fmt.Errorf("stat path %s: %w", path, err)
	}
}
