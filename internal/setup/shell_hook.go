package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeffs/conf/internal/shell"
)

// HookAction은 InstallShellHook이 rc 파일에 한 일이다.
type HookAction int

const (
	// HookUnchanged는 최신 jsh 블록이 이미 있어 아무것도 쓰지 않은 경우다.
	HookUnchanged HookAction = iota
	// HookAppended는 rc 파일 끝에 jsh 블록을 추가한 경우다.
	HookAppended
	// HookReplaced는 이전 버전의 jsh 블록을 제자리에서 교체한 경우다.
	HookReplaced
)

// DetectShell은 $SHELL에서 셸 이름을 얻는다. 로그인 셸의 "-zsh" 형태도 처리한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.Base(sh), "-")
}

// ShellRCPath는 jsh 블록을 넣을 파일이다. fish는 jsh 전용 conf.d 파일을 쓴다.
func ShellRCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "jsh.fish")
	default:
		return ""
	}
}

// InstallShellHook은 rcPath에 jsh 블록을 넣는다.
// 블록 경계 안의 내용만 다루고 나머지 rc 내용은 건드리지 않는다.
func InstallShellHook(shellType, rcPath string) (HookAction, error) {
	snippet := shell.HookSnippet(shellType)
	if snippet == "" {
		return HookUnchanged, fmt.Errorf("setup.InstallShellHook: 지원하지 않는 셸: %s", shellType)
	}

	data, err := os.ReadFile(rcPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return HookUnchanged, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	existing := string(data)

	if start, end, ok := hookBlock(existing); ok {
		if existing[start:end] == snippet {
			return HookUnchanged, nil
		}
		updated := existing[:start] + snippet + existing[end:]
		if err := os.WriteFile(rcPath, []byte(updated), 0600); err != nil {
			return HookUnchanged, fmt.Errorf("setup.InstallShellHook: %w", err)
		}
		return HookReplaced, nil
	}
	if strings.Contains(existing, shell.HookBegin) {
		// 끝 표시가 없는 블록은 사용자가 고친 것으로 보고 그대로 둔다.
		return HookUnchanged, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return HookUnchanged, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return HookUnchanged, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	sep := "\n"
	if existing == "" {
		sep = ""
	} else if !strings.HasSuffix(existing, "\n") {
		sep = "\n\n"
	}
	if _, err := fmt.Fprintf(f, "%s%s", sep, snippet); err != nil {
		return HookUnchanged, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return HookAppended, nil
}

// hookBlock은 s 안의 jsh 블록 범위를 반환한다. end는 HookEnd 줄의 줄바꿈 뒤다.
func hookBlock(s string) (start, end int, ok bool) {
	start = strings.Index(s, shell.HookBegin)
	if start < 0 {
		return 0, 0, false
	}
	rel := strings.Index(s[start:], shell.HookEnd)
	if rel < 0 {
		return 0, 0, false
	}
	end = start + rel + len(shell.HookEnd)
	if end < len(s) && s[end] == '\n' {
		end++
	}
	return start, end, true
}
