package errcode

// Reason 简短的机器可读错误类别
type Reason string

const (
	ReasonUnknown Reason = "unknown"

	// ReasonConfigInvalid 配置解析失败：目录来源缺失或参数非法
	ReasonConfigInvalid Reason = "config_invalid"

	// ReasonDirAccess 目标目录不存在、不是目录或不可读
	ReasonDirAccess Reason = "dir_access"

	// ReasonDeleteFailed 单个条目删除失败，不中断整体清理
	ReasonDeleteFailed Reason = "delete_failed"
)
