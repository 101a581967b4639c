package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Pryowin/clndir/pkg/errcode"
)

// Entry 扫描时刻的目录项快照。
// 扫描和删除之间条目可能被修改或移除，这里不做任何保证。
type Entry struct {
	Name    string    // 基础文件名
	Path    string    // 完整路径
	ModTime time.Time // 最后修改时间
	IsDir   bool
	Size    int64
}

// AgeDays 条目距 now 的年龄(整天数)，只用于展示
func (e Entry) AgeDays(now time.Time) int {
	return int(now.Sub(e.ModTime).Hours() / 24)
}

// Scan 列出 dir 的直接子项(不递归)，并读取各项的最后修改时间。
// 子目录作为普通条目返回，不向下展开。
// 符号链接取链接自身的修改时间，不跟随目标。
// 目录不存在、不是目录或不可读时返回 dir_access 错误。
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errcode.Wrap(fmt.Errorf("读取目录 %s 失败: %w", dir, err), errcode.ReasonDirAccess)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			// 列目录和读元数据之间条目已被移除，跳过
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			ModTime: info.ModTime(),
			IsDir:   de.IsDir(),
			Size:    info.Size(),
		})
	}

	return entries, nil
}
