package builtin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jeffs/conf/internal/alias"
)

// makeAndChange는 mc alias다. 인자 하나의 디렉토리를 만들고 그리로 이동한다.
func (d *Deps) makeAndChange(_ context.Context, args []string) alias.Result {
	if len(args) != 1 {
		return alias.ArityResult("mc", "1", len(args))
	}
	if err := d.Nav.MakeAndChange(args[0]); err != nil {
		return fail("mc", err)
	}
	return alias.Result{}
}

func (d *Deps) change(name string) alias.Structured {
	return func(_ context.Context, args []string) alias.Result {
		target := "~"
		switch len(args) {
		case 0:
		case 1:
			target = args[0]
		default:
			return alias.ArityResult(name, "0..1", len(args))
		}
		if err := d.Nav.Change(target); err != nil {
			return fail(name, err)
		}
		return alias.Result{}
	}
}

const clUsage = "usage: cl [-y|--yesterday]"

// changeToLog는 cl alias다. <log_root>/YYYY/MM/DD를 만들고 이동한 뒤 git init을 실행한다.
// 이미 저장소면 git init은 아무것도 바꾸지 않는다. git 실패는 경고만 남긴다.
func (d *Deps) changeToLog(ctx context.Context, args []string) alias.Result {
	day := d.now()
	switch {
	case len(args) == 0:
	case len(args) == 1 && (args[0] == "-y" || args[0] == "--yesterday"):
		day = day.AddDate(0, 0, -1)
	default:
		return alias.Result{Stderr: clUsage, ExitCode: 2}
	}
	dir := filepath.Join(d.Nav.Expand(d.Config.LogRoot), day.Format("2006"), day.Format("01"), day.Format("02"))
	if err := d.Nav.MakeAndChange(dir); err != nil {
		return fail("cl", err)
	}

	res, err := d.Runner.Run(ctx, d.State.Environ(), d.Config.Bin.Git, "init")
	switch {
	case err != nil:
		return alias.Result{Stderr: fmt.Sprintf("cl: 경고: git init 실행 실패: %v", err)}
	case res.ExitCode != 0:
		return alias.Result{Stderr: fmt.Sprintf("cl: 경고: git init 종료 코드 %d", res.ExitCode)}
	}
	return alias.Result{}
}
