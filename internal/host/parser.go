package host

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnclosedQuote는 따옴표가 닫히지 않은 줄의 sentinel error다.
var ErrUnclosedQuote = errors.New("닫히지 않은 따옴표")

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Split은 줄을 공백 기준 단어로 나눈다. 작은/큰따옴표 안의 공백은 단어에 포함된다.
// 그 밖의 셸 문법(리다이렉션, 파이프, 이스케이프)은 해석하지 않는다.
func Split(line string) ([]string, error) {
	var (
		words   []string
		b       strings.Builder
		started bool
		state   = stateOutside
	)
	flush := func() {
		if started {
			words = append(words, b.String())
			b.Reset()
			started = false
		}
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				state, started = stateSingleQuote, true
			case ch == '"':
				state, started = stateDoubleQuote, true
			default:
				b.WriteRune(ch)
				started = true
			}
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				b.WriteRune(ch)
			}
		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			} else {
				b.WriteRune(ch)
			}
		}
	}
	if state != stateOutside {
		return nil, ErrUnclosedQuote
	}
	flush()
	return words, nil
}
