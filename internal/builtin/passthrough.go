package builtin

import (
	"context"
	"fmt"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/config"
)

// jjShortcuts는 jj 하위 명령 단축 alias다.
var jjShortcuts = map[string][]string{
	"jb":   {"bookmark"},
	"jbc":  {"bookmark", "create"},
	"jbd":  {"bookmark", "describe"},
	"jbdm": {"bookmark", "describe", "--message"},
	"jbe":  {"edit"},
	"jbm":  {"bookmark", "move"},
	"jbs":  {"bookmark", "set"},
	"jbt":  {"bookmark", "track"},
	"jg":   {"git"},
	"jgf":  {"git", "fetch"},
	"jgi":  {"git", "init"},
	"jgp":  {"git", "push"},
	"jl":   {"log"},
	"jlr":  {"log", "--revisions"},
	"jn":   {"new"},
	"jnm":  {"new", "--message"},
}

// Passthrough는 alias 이름과 실행할 argv(사용자 인자 앞에 들어갈 부분)의 표다.
// cfg.Passthrough 항목이 기본 표를 덮어쓰거나 더한다.
func Passthrough(cfg *config.Config) map[string][]string {
	table := map[string][]string{
		"e":    {cfg.Bin.Editor},
		"t":    {cfg.Bin.Eza, "-T"},
		"tree": {cfg.Bin.Eza, "-T"},
	}
	for name, sub := range jjShortcuts {
		table[name] = append([]string{cfg.Bin.JJ}, sub...)
	}
	for name, argv := range cfg.Passthrough {
		if len(argv) == 0 {
			continue
		}
		table[name] = append([]string(nil), argv...)
	}
	return table
}

func (d *Deps) passthrough(name string, argv []string) alias.SimpleExit {
	return func(ctx context.Context, args []string) int {
		full := append(append([]string(nil), argv[1:]...), args...)
		code, err := d.Runner.RunInteractive(ctx, d.State.Environ(), argv[0], full...)
		if err != nil {
			if d.Err != nil {
				fmt.Fprintf(d.Err, "%s: %v\n", name, err)
			}
			return 1
		}
		return code
	}
}
