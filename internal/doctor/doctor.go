// Package doctor는 jsh가 의존하는 외부 실행 파일과 설정 파일을 진단한다.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/session"
	"github.com/jeffs/conf/internal/vcs"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// required는 없으면 세션 기능이 깨지는 실행 파일이다. 나머지는 없으면 경고만 한다.
var required = map[string]bool{"jj": true, "jump": true}

var installHints = map[string]string{
	"jj":     "https://jj-vcs.github.io/jj/latest/install-and-setup/",
	"jump":   "go install github.com/jeffs/conf/cmd/jump@latest",
	"yazi":   "https://yazi-rs.github.io/docs/installation",
	"eza":    "https://eza.rocks",
	"editor": "config.toml [bin] editor 설정",
	"git":    "https://git-scm.com/downloads",
	"glow":   "https://github.com/charmbracelet/glow",
}

// CheckBinaries는 [bin]에 설정된 실행 파일을 --version으로 확인한다.
// opener는 인자 없이 실행하면 부작용이 있어 확인하지 않는다.
func CheckBinaries(ctx context.Context, run cmdexec.Runner, cfg *config.Config) []DiagResult {
	var results []DiagResult
	for _, b := range cfg.Binaries() {
		if b.Key == "opener" {
			continue
		}
		res, err := run.Run(ctx, nil, b.Path, "--version")
		switch {
		case err != nil:
			status := StatusWarn
			if required[b.Key] {
				status = StatusFail
			}
			results = append(results, DiagResult{
				Name:    b.Key,
				Status:  status,
				Message: fmt.Sprintf("%s 없음", b.Path),
				Fix:     fmt.Sprintf("설치: %s", installHints[b.Key]),
			})
		case res.ExitCode != 0:
			results = append(results, DiagResult{
				Name:    b.Key,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s --version 종료 코드 %d", b.Path, res.ExitCode),
			})
		default:
			results = append(results, DiagResult{
				Name:    b.Key,
				Status:  StatusOK,
				Message: firstLine(res.Stdout),
			})
		}
	}
	return results
}

// CheckEnvFile은 저장된 환경 파일을 실제 bootstrap과 같은 방식으로 읽어 본다.
func CheckEnvFile(path, home string) DiagResult {
	st := session.NewState(nil)
	b := &session.Bootstrap{
		Err:    io.Discard,
		Logger: slog.New(slog.DiscardHandler),
		Home:   home,
	}
	err := b.Run(st, path)
	// sentinel 하나는 항상 설정된다.
	loaded := len(st.Changed()) - 1

	switch {
	case err == nil:
		return DiagResult{
			Name:    "env_file",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s: 변수 %d개", path, loaded),
		}
	case errors.Is(err, session.ErrConfigLoad) && loaded > 0:
		return DiagResult{
			Name:    "env_file",
			Status:  StatusWarn,
			Message: fmt.Sprintf("일부 값을 건너뜀: %v", err),
			Fix:     "문자열, 문자열 배열, 숫자, 불리언 값만 사용하세요",
		}
	default:
		return DiagResult{
			Name:    "env_file",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s에 JSON 객체를 작성하세요", path),
		}
	}
}

// CheckConfigPermissions는 설정 파일 권한을 확인한다. 파일이 없으면 기본값을 쓰므로 정상이다.
func CheckConfigPermissions(path string) DiagResult {
	if err := config.ValidateFilePermissions(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DiagResult{Name: "config", Status: StatusOK, Message: "설정 파일 없음, 기본값 사용"}
		}
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{Name: "config", Status: StatusOK, Message: path}
}

// CheckRepository는 현재 디렉토리가 jj 저장소인지 확인한다.
// 저장소 밖이면 curr_branch 필드가 비는 것이 정상이므로 실패로 보지 않는다.
func CheckRepository(ctx context.Context, run cmdexec.Runner, cfg *config.Config) DiagResult {
	root, err := vcs.NewAdapter(run, cfg.Bin.JJ).Root(ctx)
	switch {
	case err == nil:
		return DiagResult{Name: "jj_repo", Status: StatusOK, Message: root}
	case errors.Is(err, vcs.ErrNonZeroExit):
		return DiagResult{Name: "jj_repo", Status: StatusOK, Message: "현재 디렉토리는 jj 저장소가 아님, 프롬프트 branch 비어 있음"}
	default:
		return DiagResult{
			Name:    "jj_repo",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("설치: %s", installHints["jj"]),
		}
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, run cmdexec.Runner, cfg *config.Config, cfgPath, home string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, run, cfg)...)
	results = append(results, CheckRepository(ctx, run, cfg))
	results = append(results, CheckEnvFile(cfg.EnvFile, home))
	results = append(results, CheckConfigPermissions(cfgPath))
	return results
}

// HasFailure는 StatusFail 결과가 있는지 확인한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// Print는 결과를 한 줄씩 w에 쓴다.
func Print(w io.Writer, results []DiagResult) {
	for _, res := range results {
		icon := "✓"
		if res.Status == StatusFail {
			icon = "✗"
		} else if res.Status == StatusWarn {
			icon = "!"
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, res.Name, res.Message)
		if res.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", res.Fix)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
