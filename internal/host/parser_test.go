package host_test

import (
	"testing"

	"github.com/jeffs/conf/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"spaces only", "   \t ", nil},
		{"simple", "mc  foo", []string{"mc", "foo"}},
		{"single quotes", "echo 'a  b' c", []string{"echo", "a  b", "c"}},
		{"double quotes", `echo "it's here"`, []string{"echo", "it's here"}},
		{"adjacent quoting", `a'b c'"d e"f`, []string{"ab cd ef"}},
		{"empty quoted arg", `x '' y`, []string{"x", "", "y"}},
		{"no escapes", `a\ b`, []string{`a\`, "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := host.Split(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_UnclosedQuote(t *testing.T) {
	_, err := host.Split(`echo "oops`)
	assert.ErrorIs(t, err, host.ErrUnclosedQuote)

	_, err = host.Split(`echo 'oops`)
	assert.ErrorIs(t, err, host.ErrUnclosedQuote)
}
