package alias

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownAlias는 등록되지 않은 이름을 호출했을 때의 sentinel error다.
var ErrUnknownAlias = errors.New("등록되지 않은 alias")

// ArityError는 alias가 받은 인자 수가 맞지 않을 때의 에러다. 종료 코드 2로 보고된다.
type ArityError struct {
	Alias string
	Want  string
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: 인자 %s개가 필요하지만 %d개를 받음", e.Alias, e.Want, e.Got)
}

// ExitCode는 ArityError의 종료 코드다.
func (e *ArityError) ExitCode() int { return 2 }

// ArityResult는 ArityError를 alias Result로 바꾼다.
func ArityResult(name, want string, got int) Result {
	err := &ArityError{Alias: name, Want: want, Got: got}
	return Result{Stderr: err.Error(), ExitCode: err.ExitCode()}
}

// Dispatcher는 Registry의 alias를 호출하고 결과를 Result로 정규화한다.
type Dispatcher struct {
	Registry *Registry
	Logger   *slog.Logger
}

// Invoke는 name alias를 args로 실행한다.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []string) (Result, error) {
	cmd, ok := d.Registry.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("alias.Invoke: %w: %s", ErrUnknownAlias, name)
	}
	res := cmd.invoke(ctx, args)
	if d.Logger != nil {
		d.Logger.Debug("alias 실행", "alias", name, "args", args, "exit", res.ExitCode)
	}
	return res, nil
}
