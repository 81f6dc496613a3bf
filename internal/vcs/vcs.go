// Package vcs는 jj CLI를 Runner를 통해 실행한다.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeffs/conf/internal/cmdexec"
)

// BranchRevset은 현재 change의 조상 중 bookmark가 달린 가장 가까운 change들이다.
const BranchRevset = "heads(::@ & bookmarks())"

// ErrNonZeroExit는 jj가 0이 아닌 코드로 끝났을 때의 sentinel error다.
var ErrNonZeroExit = errors.New("jj 비정상 종료")

// Adapter는 jj CLI를 Runner를 통해 실행한다.
type Adapter struct {
	run cmdexec.Runner
	bin string
}

// NewAdapter는 새 jj Adapter를 생성한다. bin이 비어 있으면 "jj"를 쓴다.
func NewAdapter(run cmdexec.Runner, bin string) *Adapter {
	if bin == "" {
		bin = "jj"
	}
	return &Adapter{run: run, bin: bin}
}

// Bookmarks는 BranchRevset의 bookmark 이름들을 공백으로 이어 반환한다.
func (a *Adapter) Bookmarks(ctx context.Context) (string, error) {
	res, err := a.run.Run(ctx, nil, a.bin, "log", "-r", BranchRevset, "--no-graph", "-T", "bookmarks ++ ' '")
	if err != nil {
		return "", fmt.Errorf("vcs.Bookmarks: %w", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("vcs.Bookmarks: %w: exit %d: %s", ErrNonZeroExit, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Root는 저장소 최상위 경로를 반환한다.
func (a *Adapter) Root(ctx context.Context) (string, error) {
	res, err := a.run.Run(ctx, nil, a.bin, "root")
	if err != nil {
		return "", fmt.Errorf("vcs.Root: %w", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("vcs.Root: %w: exit %d", ErrNonZeroExit, res.ExitCode)
	}
	return strings.TrimSpace(res.Stdout), nil
}
