package builtin

import (
	"context"
	"strings"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/browser"
)

// jump은 f alias다. jump 실행 파일의 출력이 URL이면 열고, 아니면 그 경로를 만들고 이동한다.
// jump에는 스칼라 환경 변수만 넘긴다.
func (d *Deps) jump(ctx context.Context, args []string) alias.Result {
	res, err := d.Runner.Run(ctx, d.State.StringEnv(), d.Config.Bin.Jump, args...)
	if err != nil {
		return fail("f", err)
	}
	if res.ExitCode != 0 {
		return alias.Result{Stdout: res.Stdout, Stderr: res.Stderr, ExitCode: res.ExitCode}
	}

	target := strings.TrimRight(res.Stdout, "\n")
	if browser.IsURL(target) {
		if err := d.Opener.Open(ctx, target); err != nil {
			return fail("f", err)
		}
		return alias.Result{Stderr: res.Stderr}
	}
	if err := d.Nav.MakeAndChange(target); err != nil {
		return fail("f", err)
	}
	d.logger().Debug("jump", "target", target)
	return alias.Result{Stderr: res.Stderr}
}
