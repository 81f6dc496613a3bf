// Package browser는 URL을 시스템 기본 열기 프로그램으로 연다.
package browser

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/jeffs/conf/internal/cmdexec"
)

// ErrOpenFailed는 열기 프로그램이 0이 아닌 코드로 끝났을 때의 sentinel error다.
var ErrOpenFailed = errors.New("URL 열기 실패")

// DefaultOpener는 플랫폼 기본 열기 프로그램 이름이다.
func DefaultOpener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// IsURL은 s가 http: 또는 https: 로 시작하는지 확인한다.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http:") || strings.HasPrefix(s, "https:")
}

// Opener는 Runner를 통해 URL을 연다.
type Opener struct {
	Runner cmdexec.Runner
	Bin    string // 비어 있으면 DefaultOpener()
}

// Open은 url을 연다.
func (o *Opener) Open(ctx context.Context, url string) error {
	bin := o.Bin
	if bin == "" {
		bin = DefaultOpener()
	}
	res, err := o.Runner.Run(ctx, nil, bin, url)
	if err != nil {
		return fmt.Errorf("browser.Open: %w", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("browser.Open: %w: %s exit %d", ErrOpenFailed, bin, res.ExitCode)
	}
	return nil
}
