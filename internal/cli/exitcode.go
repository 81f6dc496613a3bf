package cli

import (
	"errors"
)

// ExitCode는 jsh의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitUsage는 등록되지 않은 alias 등 사용법 오류다.
	ExitUsage ExitCode = 2
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var status *ExitStatusError
	switch {
	case errors.As(err, &status):
		return ExitCode(status.Code)
	case errors.Is(err, ErrUnknownAlias):
		return ExitUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}

// IsSilent는 err가 이미 사용자에게 보고되어 다시 출력할 필요가 없는지 확인한다.
func IsSilent(err error) bool {
	var status *ExitStatusError
	return errors.As(err, &status)
}
