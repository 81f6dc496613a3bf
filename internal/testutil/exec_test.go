package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffs/conf/internal/cmdexec"
)

func TestFakeRunner_ExactMatch(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.Register("jj root", "/repo\n", 0)

	res, err := fr.Run(context.Background(), nil, "jj", "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "/repo\n" {
		t.Errorf("got %q, want %q", res.Stdout, "/repo\n")
	}
}

func TestFakeRunner_PrefixMatch(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.Register("jj log", "main", 0)

	res, err := fr.Run(context.Background(), nil, "jj", "log", "-r", "@")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "main" {
		t.Errorf("unexpected output: %s", res.Stdout)
	}
}

func TestFakeRunner_LongestPrefixWins(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.Register("jj", "short", 0)
	fr.Register("jj log", "long", 0)

	res, _ := fr.Run(context.Background(), nil, "jj", "log", "--no-graph")
	if res.Stdout != "long" {
		t.Errorf("got %q, want %q", res.Stdout, "long")
	}
}

func TestFakeRunner_NoMatchIsSpawnError(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()

	_, err := fr.Run(context.Background(), nil, "unknown", "command")
	if err == nil {
		t.Fatal("expected error for unregistered command")
	}
	if !errors.Is(err, cmdexec.ErrSpawn) {
		t.Errorf("expected ErrSpawn, got %v", err)
	}
}

func TestFakeRunner_DefaultResponse(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.DefaultResponse = &Response{Result: cmdexec.Result{Stdout: "default"}}

	res, err := fr.Run(context.Background(), nil, "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "default" {
		t.Errorf("got %q, want %q", res.Stdout, "default")
	}
}

func TestFakeRunner_RecordsCallsAndEnv(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.DefaultResponse = &Response{}

	fr.Run(context.Background(), map[string]string{"A": "1"}, "jj", "status")
	fr.RunInteractive(context.Background(), nil, "eza", "-T")

	if len(fr.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(fr.Calls))
	}
	if !fr.Called("jj") {
		t.Error("expected jj to be called")
	}
	if fr.CallCount("eza") != 1 {
		t.Errorf("expected 1 eza call, got %d", fr.CallCount("eza"))
	}
	if fr.EnvCalls[0]["A"] != "1" {
		t.Errorf("env not recorded: %v", fr.EnvCalls[0])
	}
	if len(fr.Interactive) != 1 || fr.Interactive[0] != "eza -T" {
		t.Errorf("interactive calls = %v", fr.Interactive)
	}
}

func TestFakeRunner_RegisterMissing(t *testing.T) {
	t.Parallel()

	fr := NewFakeRunner()
	fr.RegisterMissing("yazi")

	_, err := fr.RunInteractive(context.Background(), nil, "yazi", "--cwd-file", "/tmp/x")
	if !errors.Is(err, cmdexec.ErrSpawn) {
		t.Errorf("expected ErrSpawn, got %v", err)
	}
}
