package browser_test

import (
	"context"
	"testing"

	"github.com/jeffs/conf/internal/browser"
	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, browser.IsURL("https://example.com"))
	assert.True(t, browser.IsURL("http:foo"))
	assert.False(t, browser.IsURL("/tmp/https:x"))
	assert.False(t, browser.IsURL("ftp://x"))
}

func TestOpen(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register("opener https://example.com", "", 0)

	o := &browser.Opener{Runner: fake, Bin: "opener"}
	require.NoError(t, o.Open(context.Background(), "https://example.com"))
	assert.True(t, fake.Called("opener https://example.com"))
}

func TestOpen_Failures(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register("opener bad", "", 4)
	fake.RegisterMissing("missing")

	err := (&browser.Opener{Runner: fake, Bin: "opener"}).Open(context.Background(), "bad")
	assert.ErrorIs(t, err, browser.ErrOpenFailed)

	err = (&browser.Opener{Runner: fake, Bin: "missing"}).Open(context.Background(), "x")
	assert.ErrorIs(t, err, cmdexec.ErrSpawn)
}

func TestDefaultOpener(t *testing.T) {
	assert.NotEmpty(t, browser.DefaultOpener())
}
