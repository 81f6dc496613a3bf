package jump

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeffs/conf/internal/browser"
)

var (
	// ErrEmptyTarget는 펼친 결과가 빈 경로일 때의 sentinel error다.
	ErrEmptyTarget = errors.New("빈 대상")
	// ErrUnsetVariable은 $VAR 구성요소의 변수가 설정되지 않았을 때의 sentinel error다.
	ErrUnsetVariable = errors.New("설정되지 않은 변수")
)

// Expander는 경로 구성요소 단위로 ~, $VAR, %strftime 을 펼친다.
type Expander struct {
	Home   string
	Getenv func(key string) (string, bool)
	Now    func() time.Time
}

// Path는 raw의 각 '/' 구성요소를 펼쳐 다시 잇는다.
func (e *Expander) Path(raw string) (string, error) {
	parts := strings.Split(raw, "/")
	for i, part := range parts {
		expanded, err := e.component(part)
		if err != nil {
			return "", fmt.Errorf("jump.Expand: %s: %w", raw, err)
		}
		parts[i] = expanded
	}
	out := strings.Join(parts, "/")
	if out == "" {
		return "", fmt.Errorf("jump.Expand: %w", ErrEmptyTarget)
	}
	if out != "/" {
		out = filepath.Clean(out)
	}
	return out, nil
}

func (e *Expander) component(part string) (string, error) {
	switch {
	case part == "~":
		return e.Home, nil
	case strings.HasPrefix(part, "$") && len(part) > 1:
		v, ok := e.getenv(part[1:])
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsetVariable, part[1:])
		}
		return v, nil
	case strings.HasPrefix(part, "%"):
		return Strftime(part, e.now()), nil
	}
	return part, nil
}

func (e *Expander) getenv(key string) (string, bool) {
	if e.Getenv == nil {
		return "", false
	}
	return e.Getenv(key)
}

func (e *Expander) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Target은 해석된 대상이다. URL이면 펼치지 않은 원본 그대로다.
type Target struct {
	Value string
	URL   bool
}

// Resolver는 DB 조회와 펼치기를 묶는다.
type Resolver struct {
	DB     *DB
	Expand *Expander
}

// Resolve는 key를 대상으로 바꾼다.
func (r *Resolver) Resolve(key string) (Target, error) {
	raw, ok := r.DB.Get(key)
	if !ok {
		return Target{}, fmt.Errorf("jump.Resolve: %s: %w", key, ErrTargetNotFound)
	}
	if browser.IsURL(raw) {
		return Target{Value: raw, URL: true}, nil
	}
	path, err := r.Expand.Path(raw)
	if err != nil {
		return Target{}, err
	}
	return Target{Value: path}, nil
}
