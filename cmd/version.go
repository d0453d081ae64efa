package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd 创建 version 子命令。
// version 来自 main.version，发布构建通过 -ldflags "-X main.version=vX.Y.Z" 注入，本地构建为 dev。
// 输出写到命令的 stdout，便于脚本直接解析：tallyhawk version v1.2.3
func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示当前版本号",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tallyhawk version %s\n", version)
			return err
		},
	}
}
