package cli

import (
	"fmt"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/session"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnknownAlias는 등록되지 않은 alias 호출의 sentinel error다.
	ErrUnknownAlias = alias.ErrUnknownAlias
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrConfigLoad는 환경 파일 로드 실패의 sentinel error다. 종료 코드에 영향을 주지 않는다.
	ErrConfigLoad = session.ErrConfigLoad
)

// ExitStatusError는 alias나 세션이 남긴 종료 상태를 그대로 프로세스 종료 코드로 전달한다.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("종료 상태 %d", e.Code)
}
