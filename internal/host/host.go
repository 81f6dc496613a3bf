// Package host는 프롬프트를 그리고 한 줄씩 읽어 alias나 외부 명령으로 보내는 세션 루프다.
package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/prompt"
	"github.com/jeffs/conf/internal/session"
)

// StatusNotFound는 실행 파일을 찾지 못했을 때의 종료 상태다.
const StatusNotFound = 127

// Host는 하나의 대화형 세션이다.
type Host struct {
	State      *session.State
	Dispatcher *alias.Dispatcher
	Runner     cmdexec.Runner
	Fields     prompt.Fields
	Logger     *slog.Logger

	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Color bool

	last int
}

// Run은 EOF나 exit까지 줄을 읽어 실행하고 마지막 종료 상태를 반환한다.
func (h *Host) Run(ctx context.Context) (int, error) {
	scanner := bufio.NewScanner(h.In)
	for {
		fmt.Fprint(h.Out, prompt.Line(h.Fields.Resolve(ctx), h.Color))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return h.last, fmt.Errorf("host.Run: %w", err)
			}
			fmt.Fprintln(h.Out)
			return h.last, nil
		}

		words, err := Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(h.Err, "jsh: %v\n", err)
			h.last = 2
			continue
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "exit" {
			return h.exit(words[1:]), nil
		}
		h.last = h.Exec(ctx, words)
	}
}

// Exec는 단어 하나를 실행하고 종료 상태를 반환한다.
// 등록된 alias가 우선이며, 아니면 외부 명령으로 실행한다.
func (h *Host) Exec(ctx context.Context, words []string) int {
	name, args := words[0], words[1:]

	res, err := h.Dispatcher.Invoke(ctx, name, args)
	if err == nil {
		h.print(res)
		return res.ExitCode
	}
	if !errors.Is(err, alias.ErrUnknownAlias) {
		fmt.Fprintf(h.Err, "jsh: %v\n", err)
		return 1
	}

	code, err := h.Runner.RunInteractive(ctx, h.State.Environ(), name, args...)
	if errors.Is(err, cmdexec.ErrSpawn) {
		fmt.Fprintf(h.Err, "jsh: %s: 명령을 찾을 수 없음\n", name)
		h.logger().Debug("spawn 실패", "name", name, "error", err)
		return StatusNotFound
	}
	if err != nil {
		fmt.Fprintf(h.Err, "jsh: %v\n", err)
		return 1
	}
	return code
}

// Last는 마지막 종료 상태다.
func (h *Host) Last() int { return h.last }

func (h *Host) exit(args []string) int {
	if len(args) == 0 {
		return h.last
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(h.Err, "jsh: exit: 숫자가 아님: %s\n", args[0])
		return 2
	}
	return code
}

func (h *Host) print(res alias.Result) {
	if res.Stdout != "" {
		fmt.Fprint(h.Out, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(h.Err, res.Stderr)
		if !strings.HasSuffix(res.Stderr, "\n") {
			fmt.Fprintln(h.Err)
		}
	}
}

func (h *Host) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
