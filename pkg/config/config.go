package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Pryowin/clndir/pkg/constants"
	"github.com/Pryowin/clndir/pkg/errcode"
)

// Config 单次运行的完整配置，Resolve 返回后不再修改
type Config struct {
	Dir       string   `json:"dir"`         // 目标目录
	AgeDays   int      `json:"age_days"`    // 年龄阈值(天)
	Skip      []string `json:"skip"`        // 跳过模式(文件名通配，按指定顺序)
	NoWarn    bool     `json:"no_warn"`     // 跳过删除前确认
	LogLevel  string   `json:"log_level"`   // 日志级别
	LogFile   string   `json:"log_file"`    // 日志文件路径，空则不写文件
	LogMaxAge int      `json:"log_max_age"` // 日志文件保留天数
}

// Options 来自命令行的原始参数
type Options struct {
	Dir      string
	AgeDays  int
	Skip     []string
	NoWarn   bool
	LogLevel string
	LogFile  string
}

// Threshold 年龄阈值对应的时间长度
func (c Config) Threshold() time.Duration {
	return time.Duration(c.AgeDays) * 24 * time.Hour
}

// Resolve 从命令行参数解析配置。
// 未指定 --dir 时回退到 Downloads 环境变量，两者都缺失则报错。
// 除读取环境变量外不访问任何外部资源。
func Resolve(opts Options) (Config, error) {
	dir := opts.Dir
	if dir == "" {
		v := viper.New()
		if err := v.BindEnv("dir", constants.DownloadsEnv); err != nil {
			return Config{}, errcode.Wrap(err, errcode.ReasonConfigInvalid)
		}
		dir = v.GetString("dir")
	}
	if dir == "" {
		return Config{}, errcode.Wrap(
			fmt.Errorf("未指定 --dir，环境变量 %s 也未设置", constants.DownloadsEnv),
			errcode.ReasonConfigInvalid)
	}

	if opts.AgeDays < 0 {
		return Config{}, errcode.Wrap(
			fmt.Errorf("--age 必须为非负整数，当前值: %d", opts.AgeDays),
			errcode.ReasonConfigInvalid)
	}

	skip := make([]string, len(opts.Skip))
	copy(skip, opts.Skip)

	return Config{
		Dir:       dir,
		AgeDays:   opts.AgeDays,
		Skip:      skip,
		NoWarn:    opts.NoWarn,
		LogLevel:  opts.LogLevel,
		LogFile:   opts.LogFile,
		LogMaxAge: constants.DefaultLogMaxAge,
	}, nil
}
