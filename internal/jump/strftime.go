package jump

import (
	"time"

	"github.com/itchyny/timefmt-go"
)

// Strftime은 C strftime 형식으로 t를 채운다.
// %-m, %_d 같은 GNU 패딩 플래그와 %U, %V 주 번호를 지원한다.
func Strftime(format string, t time.Time) string {
	return timefmt.Format(t, format)
}
