package builtin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jeffs/conf/internal/alias"
)

// fileManager는 y alias다. yazi가 --cwd-file에 남긴 디렉토리로 이동한다.
// 임시 파일은 어떤 경로로 끝나든 지운다.
func (d *Deps) fileManager(ctx context.Context, args []string) alias.Result {
	tmp, err := os.CreateTemp(d.TempDir, "jsh-yazi-cwd.*")
	if err != nil {
		return fail("y", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if err := tmp.Close(); err != nil {
		return fail("y", err)
	}

	argv := append(append([]string(nil), args...), "--cwd-file", tmpPath)
	code, err := d.Runner.RunInteractive(ctx, d.State.Environ(), d.Config.Bin.Yazi, argv...)
	if err != nil {
		return fail("y", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return fail("y", err)
	}
	dir := strings.TrimRight(string(data), "\n")
	if dir == "" {
		return alias.Result{ExitCode: code}
	}
	if wd, err := os.Getwd(); err == nil && wd == dir {
		return alias.Result{ExitCode: code}
	}
	if err := d.Nav.Change(dir); err != nil {
		return alias.Result{Stderr: fmt.Sprintf("y: %v", err), ExitCode: 1}
	}
	return alias.Result{ExitCode: code}
}
