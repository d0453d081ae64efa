package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tallyhawk/internal/config"
	"tallyhawk/internal/languages"
	"tallyhawk/internal/logging"
	"tallyhawk/internal/model"
	"tallyhawk/internal/report"
	"tallyhawk/internal/scanner"
)

// scanFlags 存放 scan 命令行参数的原始值，只有显式设置的参数才会覆盖配置文件。
type scanFlags struct {
	configPath  string
	format      string
	output      string
	workers     int
	all         bool
	noIgnore    bool
	exclude     []string
	noComments  bool
	noBlanks    bool
	skipUnknown bool
	showFiles   bool
	noColor     bool
	logLevel    string
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	tallyhawk scan
//	tallyhawk scan ./project --format json --output result.json
//	tallyhawk scan . -x vendor -x '*.pb.go' --files
func newScanCmd(registry *languages.Registry) *cobra.Command {
	defaults := config.Default()
	flags := scanFlags{
		format:   defaults.Format,
		logLevel: defaults.LogLevel,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出按语言汇总的行数统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}

			options, err := resolveOptions(cmd.Flags(), flags, target)
			if err != nil {
				return err
			}

			logger, err := logging.New(options.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			service := scanner.NewService(registry, options.ScannerOptions(logger))
			result, err := service.Scan(cmd.Context(), target)
			if err != nil {
				return err
			}

			return render(cmd, options, result)
		},
	}

	scanCmd.Flags().StringVar(&flags.configPath, "config", "", "配置文件路径，默认读取扫描根目录下的 "+config.FileName)
	scanCmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "输出格式: table、json 或 csv")
	scanCmd.Flags().StringVarP(&flags.output, "output", "o", "", "json 额外导出到该文件")
	scanCmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "并发 worker 数量，0 表示 CPU 核数")
	scanCmd.Flags().BoolVarP(&flags.all, "all", "a", false, "包含隐藏文件和目录（.git 等版本库目录始终排除）")
	scanCmd.Flags().BoolVar(&flags.noIgnore, "no-ignore", false, "不读取 .gitignore/.ignore 等忽略文件")
	scanCmd.Flags().StringArrayVarP(&flags.exclude, "exclude", "x", nil, "额外的排除模式，可重复；以 ! 开头表示强制包含")
	scanCmd.Flags().BoolVar(&flags.noComments, "no-comments", false, "注释行不计入统计")
	scanCmd.Flags().BoolVar(&flags.noBlanks, "no-blanks", false, "空白行不计入统计")
	scanCmd.Flags().BoolVar(&flags.skipUnknown, "skip-unknown", false, "忽略无法识别语言的文件")
	scanCmd.Flags().BoolVar(&flags.showFiles, "files", false, "table 格式下输出逐文件明细")
	scanCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "禁用彩色输出")
	scanCmd.Flags().StringVar(&flags.logLevel, "log-level", flags.logLevel, "日志级别: debug、info、warn、error")

	return scanCmd
}

// resolveOptions 按 默认值 -> 配置文件 -> 显式参数 的顺序合并配置。
func resolveOptions(set *pflag.FlagSet, flags scanFlags, target string) (config.Options, error) {
	options := config.Default()

	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath, options)
		if err != nil {
			return options, err
		}
		options = loaded
	} else {
		loaded, _, err := config.LoadOptional(filepath.Join(configDir(target), config.FileName), options)
		if err != nil {
			return options, err
		}
		options = loaded
	}

	if set.Changed("format") {
		options.Format = flags.format
	}
	if set.Changed("output") {
		options.Output = flags.output
	}
	if set.Changed("workers") {
		options.Workers = flags.workers
	}
	if set.Changed("all") {
		options.IncludeHidden = flags.all
	}
	if set.Changed("no-ignore") {
		options.RespectIgnoreFiles = !flags.noIgnore
	}
	if set.Changed("exclude") {
		// 命令行规则追加在配置文件规则之后，后出现的规则优先。
		options.ExcludePatterns = append(options.ExcludePatterns, flags.exclude...)
	}
	if set.Changed("no-comments") {
		options.CountComments = !flags.noComments
	}
	if set.Changed("no-blanks") {
		options.CountBlanks = !flags.noBlanks
	}
	if set.Changed("skip-unknown") {
		options.SkipUnknown = flags.skipUnknown
	}
	if set.Changed("files") {
		options.ShowFiles = flags.showFiles
	}
	if set.Changed("no-color") {
		options.NoColor = flags.noColor
	}
	if set.Changed("log-level") {
		options.LogLevel = flags.logLevel
	}

	if err := options.Validate(); err != nil {
		return options, err
	}
	return options, nil
}

// configDir 返回自动加载配置文件的目录：目录本身，或单文件所在目录。
func configDir(target string) string {
	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		return filepath.Dir(target)
	}
	return target
}

// render 按格式输出报告。
func render(cmd *cobra.Command, options config.Options, result model.Report) error {
	format, err := report.ParseFormat(options.Format)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	switch format {
	case report.FormatJSON:
		if err := report.PrintJSON(stdout, result); err != nil {
			return err
		}

		outputPath := strings.TrimSpace(options.Output)
		if outputPath == "" {
			return nil
		}
		if err := report.WriteJSONFile(outputPath, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "JSON exported to %s\n", outputPath)
		return nil
	case report.FormatCSV:
		return report.PrintCSV(stdout, result)
	default:
		return report.PrintTable(stdout, result, report.TableOptions{
			ShowFiles: options.ShowFiles,
			Color:     !options.NoColor && isTerminal(stdout),
		})
	}
}

// isTerminal 判断输出是否为终端，重定向到文件或管道时不输出颜色。
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
