// Package cmd 提供 tallyhawk 的命令行入口与子命令编排。
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tallyhawk/internal/languages"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，ctx 取消时正在进行的扫描会中止。
func Execute(ctx context.Context, version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tallyhawk",
		Short: "按语言统计目录树的代码、注释与空白行",
		Long: "tallyhawk 递归扫描目录，遵循 .gitignore/.ignore 规则，\n" +
			"按语言汇总 total/code/comment/blank 行数，支持 table、json、csv 输出。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))

	return rootCmd
}
