package constants

const (
	// DownloadsEnv 未指定 --dir 时回退读取的环境变量名
	DownloadsEnv = "Downloads"

	// DefaultAgeDays 默认年龄阈值(天)
	DefaultAgeDays = 180

	// DefaultLogMaxAge 日志文件默认保留天数
	DefaultLogMaxAge = 7

	// DateFormat 候选列表中修改时间的显示格式
	DateFormat = "2006-01-02"
)
