// Package builtin은 매 세션마다 새로 만들어지는 기본 alias 집합이다.
package builtin

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/browser"
	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/navigate"
	"github.com/jeffs/conf/internal/session"
)

// Deps는 alias들이 공유하는 의존성이다.
type Deps struct {
	State  *session.State
	Runner cmdexec.Runner
	Nav    *navigate.Navigator
	Opener *browser.Opener
	Config *config.Config
	Err    io.Writer
	Logger *slog.Logger

	// Now는 cl과 ls가 쓰는 현재 시각이다. nil이면 time.Now.
	Now func() time.Time
	// TempDir은 y가 cwd 파일을 만드는 위치다. 비어 있으면 os.TempDir.
	TempDir string
	// Columns는 glow에 넘길 터미널 폭이다. nil이면 COLUMNS, 그다음 stdout 크기를 본다.
	Columns func() int
}

func (d *Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// NewRegistry는 기본 alias를 등록한 Registry를 만든다.
// interactive가 false면 빈 Registry를 반환한다.
func NewRegistry(d *Deps, interactive bool) *alias.Registry {
	reg := alias.NewRegistry()
	if !interactive {
		return reg
	}
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Nav == nil {
		d.Nav = &navigate.Navigator{}
	}
	if d.Opener == nil {
		d.Opener = &browser.Opener{Runner: d.Runner, Bin: d.Config.Bin.Opener}
	}

	reg.Register("mc", alias.Structured(d.makeAndChange))
	reg.Register("c", alias.Structured(d.change("c")))
	reg.Register("cd", alias.Structured(d.change("cd")))
	reg.Register("cl", alias.Structured(d.changeToLog))
	reg.Register("f", alias.Structured(d.jump))
	reg.Register("y", alias.Structured(d.fileManager))
	reg.Register("ls", alias.Structured(d.list))
	reg.Register("glow", d.pager())

	for name, argv := range Passthrough(d.Config) {
		reg.Register(name, d.passthrough(name, argv))
	}
	return reg
}

func fail(name string, err error) alias.Result {
	return alias.Result{Stderr: fmt.Sprintf("%s: %v", name, err), ExitCode: 1}
}
