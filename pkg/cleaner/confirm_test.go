package cleaner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Pryowin/clndir/pkg/scanner"
)

func TestConsoleConfirmerAnswers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"del\n", false},
		{"yess\n", false},
		{"", false}, // 输入流直接结束
	}

	candidates := []scanner.Entry{
		{Name: "old.txt", ModTime: time.Now().AddDate(0, 0, -200)},
	}

	for _, c := range cases {
		var out bytes.Buffer
		confirmer := &ConsoleConfirmer{In: strings.NewReader(c.input), Out: &out}
		if got := confirmer.Ask(candidates); got != c.want {
			t.Errorf("Ask() with input %q = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestConsoleConfirmerListsAllCandidates(t *testing.T) {
	candidates := []scanner.Entry{
		{Name: "old.txt", ModTime: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Name: "stale-dir", IsDir: true, ModTime: time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)},
	}

	var out bytes.Buffer
	confirmer := &ConsoleConfirmer{In: strings.NewReader("n\n"), Out: &out}
	confirmer.Ask(candidates)

	listing := out.String()
	if !strings.Contains(listing, "old.txt") {
		t.Error("listing does not mention old.txt")
	}
	if !strings.Contains(listing, "stale-dir/") {
		t.Error("listing does not mark stale-dir as directory")
	}
	if !strings.Contains(listing, "2024-01-02") {
		t.Error("listing does not show modification date")
	}
}
