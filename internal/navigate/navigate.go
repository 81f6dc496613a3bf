// Package navigate는 작업 디렉토리를 바꾸는 alias들이 공유하는 primitive를 제공한다.
package navigate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Navigator는 디렉토리 생성과 cwd 변경을 수행한다.
// Home이 비어 있으면 os.UserHomeDir를 사용한다.
type Navigator struct {
	Home string
}

// ExpandHome은 "~" 또는 "~/..." 형태의 경로를 홈 디렉토리 기준으로 펼친다.
// "~user" 형태는 지원하지 않으며 그대로 반환한다.
func ExpandHome(path, home string) string {
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		home = h
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Expand는 Navigator의 홈 디렉토리 기준으로 경로를 펼친다.
func (n *Navigator) Expand(path string) string {
	return ExpandHome(path, n.Home)
}

// MakeAndChange는 path의 누락된 상위 디렉토리까지 모두 만든 뒤 cwd를 옮긴다.
// 실패하면 cwd는 바뀌지 않는다.
func (n *Navigator) MakeAndChange(path string) error {
	target := n.Expand(path)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("navigate.MakeAndChange: %w", err)
	}
	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("navigate.MakeAndChange: %w", err)
	}
	return nil
}

// Change는 이미 존재하는 디렉토리로 cwd를 옮긴다.
func (n *Navigator) Change(path string) error {
	if err := os.Chdir(n.Expand(path)); err != nil {
		return fmt.Errorf("navigate.Change: %w", err)
	}
	return nil
}

// Abbrev는 홈 디렉토리 아래 경로를 "~" 표기로 줄인다.
func (n *Navigator) Abbrev(path string) string {
	home := n.Expand("~")
	if home == "~" || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rel
	}
	return path
}
