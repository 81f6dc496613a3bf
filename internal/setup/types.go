package setup

// Input은 setup 폼에서 사용자가 입력하는 값이다.
type Input struct {
	EnvFile     string
	LogRoot     string
	Editor      string
	Interactive bool
	InstallHook bool
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunSetupForm은 설정 입력 폼을 실행한다. defaults는 현재 설정값이다.
	RunSetupForm(defaults Input) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
