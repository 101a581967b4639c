package logger

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zerolog.Logger

// Init 初始化 zerolog 日志
// level: 日志级别 ("debug", "info", "warn", "error")
// file: 日志文件路径，为空时仅输出到控制台
// maxAge: 日志文件保留天数
// 控制台输出走 stderr，保持 stdout 只用于候选列表和确认交互。
// 每次运行附带一个 run_id，便于区分日志文件中不同批次的记录。
func Init(level string, file string, maxAge int) {
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	if file != "" {
		// 指定了日志文件时同时写入轮转文件，轮转策略与控制台无关
		sink := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     maxAge,
			Compress:   true,
		}
		output = io.MultiWriter(output, sink)
	}

	logger := zerolog.New(output).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger().
		Level(logLevel)

	Logger = &logger
}

// Get 返回全局 logger 实例
// 未初始化时返回丢弃所有输出的默认 logger
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
