package cleaner

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Pryowin/clndir/pkg/constants"
	"github.com/Pryowin/clndir/pkg/scanner"
)

// Confirmer 删除前的确认能力，测试可替换为脚本实现
type Confirmer interface {
	Ask(candidates []scanner.Entry) bool
}

// ConsoleConfirmer 在标准输入输出上列出候选并等待用户确认。
// 读取没有超时，用户不响应则一直阻塞。
type ConsoleConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Ask 打印完整候选列表后询问是否删除。
// 只有 y/yes(不区分大小写)视为确认，其余一律取消。
func (c *ConsoleConfirmer) Ask(candidates []scanner.Entry) bool {
	now := time.Now()
	for _, e := range candidates {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		fmt.Fprintf(c.Out, "修改于 %s  %s (%d天)\n",
			color.GreenString(e.ModTime.Format(constants.DateFormat)),
			color.YellowString(name),
			e.AgeDays(now))
	}

	fmt.Fprintf(c.Out, "\n确认删除以上 %d 个条目? 输入 %s 继续 : ", len(candidates), color.RedString("y/yes"))

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.Out, "已取消，未删除任何条目")
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		fmt.Fprintln(c.Out, "已取消，未删除任何条目")
		return false
	}
}
