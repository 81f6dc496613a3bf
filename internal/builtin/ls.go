package builtin

import (
	"context"
	"strings"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/lister"
)

// list는 ls alias다.
func (d *Deps) list(_ context.Context, args []string) alias.Result {
	entries, err := lister.List(args)
	if err != nil {
		return fail("ls", err)
	}
	var out strings.Builder
	if err := lister.Render(&out, entries, d.now()); err != nil {
		return fail("ls", err)
	}
	return alias.Result{Stdout: out.String()}
}
