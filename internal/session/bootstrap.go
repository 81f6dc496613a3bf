// Package session은 세션 상태와 1회성 로그인 bootstrap을 다룬다.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/jeffs/conf/internal/navigate"
)

// ErrConfigLoad는 환경 파일을 읽거나 해석하지 못했을 때의 sentinel error다.
// 세션 시작을 막지 않는다.
var ErrConfigLoad = errors.New("환경 파일 로드 실패")

// Bootstrap은 저장된 환경 변수를 세션에 한 번만 병합한다.
type Bootstrap struct {
	Err    io.Writer
	Logger *slog.Logger
	Home   string // 테스트용. 비어있으면 os.UserHomeDir.
}

// Run은 path의 JSON 객체를 st.Env에 병합한다. st.LoginDone이면 아무것도 하지 않는다.
// 실패는 Err에 한 줄로 보고하고 ErrConfigLoad로 감싸 반환하지만, 호출자는 계속 진행한다.
func (b *Bootstrap) Run(st *State, path string) error {
	if st.LoginDone {
		b.logger().Debug("bootstrap 건너뜀", "reason", "login done")
		return nil
	}

	// 아래에서 실패해도 같은 프로세스에서 재시도하지 않는다.
	st.LoginDone = true
	st.Set(SentinelVar, String("1"))

	expanded := navigate.ExpandHome(path, b.Home)
	vars, err := readEnvFile(expanded)
	if err != nil {
		return b.report(fmt.Errorf("session.Bootstrap: %w: %w", ErrConfigLoad, err))
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var skipped []string
	for _, k := range keys {
		v, ok := decodeValue(vars[k])
		if !ok {
			skipped = append(skipped, k)
			continue
		}
		st.Set(k, v)
	}
	b.logger().Debug("환경 병합 완료", "path", expanded, "keys", len(keys)-len(skipped))

	if len(skipped) > 0 {
		return b.report(fmt.Errorf("session.Bootstrap: %w: %s: 지원하지 않는 값 형식: %v", ErrConfigLoad, expanded, skipped))
	}
	return nil
}

func (b *Bootstrap) report(err error) error {
	if b.Err != nil {
		fmt.Fprintf(b.Err, "경고: %v\n", err)
	}
	b.logger().Warn("환경 파일 로드 실패", "error", err)
	return err
}

func (b *Bootstrap) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

func readEnvFile(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vars map[string]json.RawMessage
	if err := json.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if vars == nil {
		return nil, fmt.Errorf("%s: JSON 객체가 아님", path)
	}
	return vars, nil
}

// decodeValue는 문자열, 문자열 배열, 숫자/불리언 리터럴만 받아들인다.
func decodeValue(raw json.RawMessage) (Value, bool) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Value{}, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return String(s), true
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err == nil && items != nil {
		return List(items...), true
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err == nil {
		return String(n.String()), true
	}
	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return String(strconv.FormatBool(flag)), true
	}
	return Value{}, false
}
