package cmd

import (
	"github.com/spf13/cobra"

	"tallyhawk/internal/languages"
	"tallyhawk/internal/report"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示当前支持的语言以及对应文件后缀、精确文件名。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已支持语言及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.PrintLanguages(cmd.OutOrStdout(), registry.Languages())
		},
	}
}
