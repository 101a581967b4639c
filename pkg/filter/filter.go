package filter

import (
	"time"

	"github.com/IGLOU-EU/go-wildcard"

	"github.com/Pryowin/clndir/pkg/config"
	"github.com/Pryowin/clndir/pkg/scanner"
)

// Matches 判断文件名是否匹配通配模式。
// * 匹配任意长度字符，? 匹配单个字符，大小写敏感。
func Matches(name, pattern string) bool {
	return wildcard.Match(pattern, name)
}

// Select 从扫描结果中挑出删除候选：
// 年龄严格大于阈值，且基础文件名不匹配任何跳过模式。
// 恰好等于阈值的条目保留。结果保持扫描顺序。
func Select(entries []scanner.Entry, now time.Time, cfg config.Config) []scanner.Entry {
	var candidates []scanner.Entry
	for _, e := range entries {
		if now.Sub(e.ModTime) <= cfg.Threshold() {
			continue
		}
		if skipped(e.Name, cfg.Skip) {
			continue
		}
		candidates = append(candidates, e)
	}
	return candidates
}

func skipped(name string, patterns []string) bool {
	for _, p := range patterns {
		if Matches(name, p) {
			return true
		}
	}
	return false
}
