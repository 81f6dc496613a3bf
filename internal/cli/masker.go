package cli

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`(ghp_|gho_|github_pat_|ghs_|ghu_|sk-)\S+`)

var secretKeyPattern = regexp.MustCompile(`(?i)(token|secret|password|passwd|api_?key)`)

// MaskTokens는 잘 알려진 토큰 접두사 패턴을 마스킹한다.
func MaskTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		for _, prefix := range []string{"ghp_", "gho_", "github_pat_", "ghs_", "ghu_", "sk-"} {
			if strings.HasPrefix(match, prefix) {
				return prefix + "****"
			}
		}
		return match
	})
}

// MaskValue는 이름이 비밀처럼 보이는 변수의 값을 통째로 가리고, 그 밖에는 MaskTokens를 적용한다.
func MaskValue(key, value string) string {
	if value != "" && secretKeyPattern.MatchString(key) {
		return "****"
	}
	return MaskTokens(value)
}
