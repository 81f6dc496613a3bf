package shell

import (
	"fmt"
	"strings"

	"github.com/jeffs/conf/internal/session"
)

// Supported는 지원하는 셸 종류다.
var Supported = []string{"bash", "fish", "zsh"}

// IsSupported는 shellType을 지원하는지 확인한다.
func IsSupported(shellType string) bool {
	for _, s := range Supported {
		if s == shellType {
			return true
		}
	}
	return false
}

// Exports는 keys의 값을 shellType 문법의 export 문으로 만든다.
// fish에서는 목록 값을 fish 목록으로, 그 밖에서는 ':'로 이은 문자열로 내보낸다.
func Exports(st *session.State, keys []string, shellType string) string {
	var b strings.Builder
	for _, k := range keys {
		v, ok := st.Get(k)
		if !ok {
			continue
		}
		switch shellType {
		case "fish":
			items := v.Items()
			quoted := make([]string, len(items))
			for i, item := range items {
				quoted[i] = fishQuote(item)
			}
			fmt.Fprintf(&b, "set -gx %s %s\n", k, strings.Join(quoted, " "))
		default: // bash, zsh, sh
			fmt.Fprintf(&b, "export %s=%s\n", k, posixQuote(v.String()))
		}
	}
	return b.String()
}

// Unsets는 keys를 지우는 문을 만든다.
func Unsets(keys []string, shellType string) string {
	var b strings.Builder
	for _, k := range keys {
		switch shellType {
		case "fish":
			fmt.Fprintf(&b, "set -e %s\n", k)
		default:
			fmt.Fprintf(&b, "unset %s\n", k)
		}
	}
	return b.String()
}

// HookBegin과 HookEnd는 rc 파일 안에서 jsh 블록의 경계를 표시한다.
const (
	HookBegin = "# >>> jsh shell integration"
	HookEnd   = "# <<< jsh shell integration"
)

var hookBodies = map[string]string{
	"zsh": `eval "$(jsh env --shell zsh 2>/dev/null)"
_jsh_precmd() {
  JSH_BRANCH="$(jsh prompt branch 2>/dev/null)"
}
precmd_functions+=(_jsh_precmd)
`,
	"bash": `eval "$(jsh env --shell bash 2>/dev/null)"
_jsh_prompt_command() {
  JSH_BRANCH="$(jsh prompt branch 2>/dev/null)"
}
PROMPT_COMMAND="_jsh_prompt_command;${PROMPT_COMMAND}"
`,
	"fish": `jsh env --shell fish 2>/dev/null | source
function _jsh_prompt --on-event fish_prompt
  set -g JSH_BRANCH (jsh prompt branch 2>/dev/null)
end
`,
}

// HookSnippet는 HookBegin과 HookEnd로 감싼 셸 hook 스니펫을 반환한다.
// 로그인 시 한 번 jsh env를 eval하고, 프롬프트마다 JSH_BRANCH를 갱신한다.
func HookSnippet(shellType string) string {
	body, ok := hookBodies[shellType]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s (%s)\n%s%s\n", HookBegin, shellType, body, HookEnd)
}

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
