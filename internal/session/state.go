package session

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SentinelVar는 "이 프로세스에서 bootstrap이 이미 실행됨"을 표시하는 환경 변수다.
// 자식 프로세스에 상속되지만 디스크에 저장되지는 않는다.
const SentinelVar = "JSH_LOGIN_DONE"

// Value는 문자열 또는 문자열 목록인 환경 값이다.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// String은 스칼라 Value를 만든다.
func String(s string) Value {
	return Value{scalar: s}
}

// List는 목록 Value를 만든다.
func List(items ...string) Value {
	return Value{list: append([]string(nil), items...), isList: true}
}

// IsList는 목록 값인지 반환한다.
func (v Value) IsList() bool { return v.isList }

// Items는 목록 값의 복사본을 반환한다. 스칼라면 원소 하나짜리 목록이다.
func (v Value) Items() []string {
	if !v.isList {
		return []string{v.scalar}
	}
	return append([]string(nil), v.list...)
}

// String은 외부 프로세스가 보는 평탄한 문자열이다. 목록은 ':'로 잇는다.
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ":")
	}
	return v.scalar
}

// State는 하나의 셸 세션이 소유하는 가변 상태다.
// 프로세스 종료와 함께 사라지며 이 패키지는 이를 저장하지 않는다.
type State struct {
	ID        string
	Env       map[string]Value
	LoginDone bool

	changed map[string]struct{}
}

// NewState는 상속받은 "KEY=VALUE" 목록으로 State를 만든다.
// 상속 환경에 SentinelVar가 있으면 bootstrap이 이미 끝난 것으로 본다.
func NewState(environ []string) *State {
	st := &State{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Env:     make(map[string]Value, len(environ)),
		changed: make(map[string]struct{}),
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		st.Env[k] = String(v)
	}
	_, st.LoginDone = st.Env[SentinelVar]
	return st
}

// Set은 값을 기록하고 변경된 키로 표시한다.
func (s *State) Set(key string, v Value) {
	if s.Env == nil {
		s.Env = make(map[string]Value)
	}
	if s.changed == nil {
		s.changed = make(map[string]struct{})
	}
	s.Env[key] = v
	s.changed[key] = struct{}{}
}

// Get은 키의 값을 반환한다.
func (s *State) Get(key string) (Value, bool) {
	v, ok := s.Env[key]
	return v, ok
}

// Changed는 State 생성 이후 Set된 키를 정렬해 반환한다.
func (s *State) Changed() []string {
	keys := make([]string, 0, len(s.changed))
	for k := range s.changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Environ은 외부 프로세스용 전체 환경이다. 목록 값은 ':'로 이어진다.
func (s *State) Environ() map[string]string {
	env := make(map[string]string, len(s.Env))
	for k, v := range s.Env {
		env[k] = v.String()
	}
	return env
}

// StringEnv는 스칼라 값만 담은 환경이다.
func (s *State) StringEnv() map[string]string {
	env := make(map[string]string, len(s.Env))
	for k, v := range s.Env {
		if !v.IsList() {
			env[k] = v.scalar
		}
	}
	return env
}
