package cleaner

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Pryowin/clndir/pkg/config"
	"github.com/Pryowin/clndir/pkg/errcode"
	"github.com/Pryowin/clndir/pkg/scanner"
)

// Result 一次清理的统计
type Result struct {
	FilesRemoved int64 // 删除的文件数(含符号链接)
	DirsRemoved  int64 // 删除的目录数
	SpaceFreed   int64 // 释放的字节数(按扫描时记录的大小)
	Failed       int   // 删除失败的条目数
}

// Removed 成功删除的条目总数
func (r Result) Removed() int64 {
	return r.FilesRemoved + r.DirsRemoved
}

// Cleaner 删除执行器
type Cleaner struct {
	cfg config.Config
	log *zerolog.Logger
	ask Confirmer
}

// New 创建删除执行器
func New(cfg config.Config, log *zerolog.Logger, ask Confirmer) *Cleaner {
	return &Cleaner{
		cfg: cfg,
		log: log,
		ask: ask,
	}
}

// Run 执行确认和删除流程，返回统计和是否实际执行了删除阶段。
// 配置要求确认且用户拒绝时，不删除任何条目并返回 false。
// 单个条目删除失败只记录并计数，整个列表会走完，不重试。
func (c *Cleaner) Run(candidates []scanner.Entry) (Result, bool) {
	var result Result

	if len(candidates) == 0 {
		c.log.Info().Msg("没有符合条件的条目")
		return result, true
	}

	if !c.cfg.NoWarn && !c.ask.Ask(candidates) {
		c.log.Info().Int("candidates", len(candidates)).Msg("用户取消删除")
		return result, false
	}

	for _, e := range candidates {
		if err := remove(e); err != nil {
			c.log.Error().Err(err).Str("path", e.Path).Msg("删除失败")
			result.Failed++
			continue
		}
		if e.IsDir {
			result.DirsRemoved++
		} else {
			result.FilesRemoved++
		}
		result.SpaceFreed += e.Size
		c.log.Debug().Str("path", e.Path).Msg("已删除")
	}

	return result, true
}

// remove 按条目类型删除：目录整体移除，文件和符号链接单独删除
func remove(e scanner.Entry) error {
	var err error
	if e.IsDir {
		err = os.RemoveAll(e.Path)
	} else {
		err = os.Remove(e.Path)
	}
	if err != nil {
		return errcode.Wrap(err, errcode.ReasonDeleteFailed)
	}
	return nil
}
