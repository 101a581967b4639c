package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pryowin/clndir/pkg/cleaner"
	"github.com/Pryowin/clndir/pkg/config"
	"github.com/Pryowin/clndir/pkg/constants"
	"github.com/Pryowin/clndir/pkg/errcode"
	"github.com/Pryowin/clndir/pkg/filter"
	"github.com/Pryowin/clndir/pkg/logger"
	"github.com/Pryowin/clndir/pkg/scanner"
)

var opts config.Options

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clndir",
	Short: "清理目录中超过指定年龄的旧文件",
	Long: `clndir 删除目标目录中最后修改时间超过 --age 天的条目。

未指定 --dir 时回退到环境变量 Downloads，两者都缺失则报错退出。
除非指定 --nowarn，删除前会列出全部候选并要求确认。
匹配 --skip 模式的条目永不删除，该参数可重复。
只处理目录的直接子项，不递归；子目录按整体作为候选条目。`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode 按错误类别映射退出码：配置错误 2，其余 1
func exitCode(err error) int {
	if errcode.Has(err, errcode.ReasonConfigInvalid) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "目标目录(默认取环境变量 Downloads)")
	rootCmd.Flags().IntVarP(&opts.AgeDays, "age", "a", constants.DefaultAgeDays, "年龄阈值(天)")
	rootCmd.Flags().StringArrayVarP(&opts.Skip, "skip", "s", nil, "跳过模式(文件名通配，可重复)")
	rootCmd.Flags().BoolVarP(&opts.NoWarn, "nowarn", "n", false, "跳过删除前确认")
	rootCmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "日志级别 (debug/info/warn/error)")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "日志文件路径(留空则不写文件)")
}

// run 按固定顺序执行：解析配置 -> 扫描 -> 过滤 -> 确认并删除。
// 配置和扫描阶段的错误直接终止，此时尚未发生任何删除。
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(opts)
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel, cfg.LogFile, cfg.LogMaxAge)
	log := logger.Get()
	log.Debug().
		Str("dir", cfg.Dir).
		Int("age_days", cfg.AgeDays).
		Strs("skip", cfg.Skip).
		Bool("nowarn", cfg.NoWarn).
		Msg("配置解析完成")

	entries, err := scanner.Scan(cfg.Dir)
	if err != nil {
		return err
	}

	candidates := filter.Select(entries, time.Now(), cfg)
	log.Debug().Int("entries", len(entries)).Int("candidates", len(candidates)).Msg("扫描完成")

	confirmer := &cleaner.ConsoleConfirmer{In: os.Stdin, Out: os.Stdout}
	result, ok := cleaner.New(cfg, log, confirmer).Run(candidates)
	if !ok {
		// 用户取消视为正常结束
		return nil
	}

	fmt.Printf("已删除 %d 个条目，释放空间 %.2f MB\n",
		result.Removed(), float64(result.SpaceFreed)/(1024*1024))
	if result.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d 个条目删除失败，详见日志\n", result.Failed)
	}

	log.Info().
		Int64("files", result.FilesRemoved).
		Int64("dirs", result.DirsRemoved).
		Int64("bytes", result.SpaceFreed).
		Int("failed", result.Failed).
		Msg("清理完成")

	// 单个条目的删除失败不影响退出码，本轮清理已完整走完
	return nil
}
