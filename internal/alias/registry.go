// Package alias는 세션 alias의 등록과 호출을 담당한다.
package alias

import (
	"context"
	"sort"
)

// Result는 alias 호출의 정규화된 결과다. 빈 문자열은 출력이 없음을 뜻한다.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Command는 SimpleExit 또는 Structured 중 하나다.
type Command interface {
	invoke(ctx context.Context, args []string) Result
}

// SimpleExit는 종료 코드만 돌려주는 alias다.
type SimpleExit func(ctx context.Context, args []string) int

func (f SimpleExit) invoke(ctx context.Context, args []string) Result {
	return Result{ExitCode: f(ctx, args)}
}

// Structured는 stdout/stderr/종료 코드를 함께 돌려주는 alias다.
type Structured func(ctx context.Context, args []string) Result

func (f Structured) invoke(ctx context.Context, args []string) Result {
	return f(ctx, args)
}

// Registry는 alias 이름과 Command의 매핑이다. 같은 이름을 다시 등록하면 덮어쓴다.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry는 빈 Registry를 만든다.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register는 name에 cmd를 등록한다.
func (r *Registry) Register(name string, cmd Command) {
	if r.cmds == nil {
		r.cmds = make(map[string]Command)
	}
	r.cmds[name] = cmd
}

// Remove는 name의 등록을 해제한다.
func (r *Registry) Remove(name string) {
	delete(r.cmds, name)
}

// Lookup은 name에 등록된 Command를 반환한다.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names는 등록된 이름을 정렬해 반환한다.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len은 등록된 alias 수다.
func (r *Registry) Len() int { return len(r.cmds) }
