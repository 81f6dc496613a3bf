package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunSetupForm은 설정 입력 폼을 실행한다.
func (h *HuhFormRunner) RunSetupForm(defaults Input) (*Input, error) {
	input := defaults

	pathValidate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("경로를 입력하세요")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("환경 변수 파일").
				Description("로그인 시 한 번 읽는 JSON 객체 (예: ~/conf/var/env.json)").
				Value(&input.EnvFile).
				Validate(pathValidate),
			huh.NewInput().Title("로그 디렉토리").
				Description("cl alias가 YYYY/MM/DD 디렉토리를 만드는 위치").
				Value(&input.LogRoot).
				Validate(pathValidate),
			huh.NewInput().Title("편집기").
				Value(&input.Editor).
				Validate(huh.ValidateNotEmpty()),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("stdin이 터미널이 아니어도 alias를 등록할까요?").
				Value(&input.Interactive),
			huh.NewConfirm().Title("셸 hook을 설치할까요?").
				Description("프롬프트마다 jj bookmark를 JSH_BRANCH에 갱신합니다").
				Value(&input.InstallHook),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunSetupForm: %w", err)
	}
	return &input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
