package builtin

import (
	"context"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"github.com/jeffs/conf/internal/alias"
)

const defaultColumns = 80

// pager는 glow alias다. 현재 터미널 폭을 --width로 넘긴다.
func (d *Deps) pager() alias.SimpleExit {
	return func(ctx context.Context, args []string) int {
		argv := []string{d.Config.Bin.Glow, "--pager", "--width", strconv.Itoa(d.columns())}
		return d.passthrough("glow", argv)(ctx, args)
	}
}

func (d *Deps) columns() int {
	if d.Columns != nil {
		return d.Columns()
	}
	if v, ok := d.State.Get("COLUMNS"); ok {
		if n, err := strconv.Atoi(v.String()); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultColumns
}
