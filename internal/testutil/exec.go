package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeffs/conf/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeRunner.
type Response struct {
	Result cmdexec.Result
	Err    error
}

// FakeRunner returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeRunner struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "jj log", "jump src")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// EnvCalls records the environment maps passed to each call, in order.
	EnvCalls []map[string]string

	// Interactive records the commands that were run through RunInteractive.
	Interactive []string

	// DefaultResponse is returned when no matching response is found.
	// If nil, a spawn error is returned for unmatched commands.
	DefaultResponse *Response

	// Hook, when set, runs before a matched response is returned. Tests use
	// it to simulate side effects of the external program.
	Hook func(name string, args []string)
}

// NewFakeRunner creates a FakeRunner with an empty response map.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (f *FakeRunner) Register(key string, stdout string, exitCode int) {
	f.Responses[key] = Response{Result: cmdexec.Result{Stdout: stdout, ExitCode: exitCode}}
}

// RegisterResult adds a full result for the given command key.
func (f *FakeRunner) RegisterResult(key string, res cmdexec.Result) {
	f.Responses[key] = Response{Result: res}
}

// RegisterMissing makes the given command key fail to spawn.
func (f *FakeRunner) RegisterMissing(key string) {
	f.Responses[key] = Response{Err: fmt.Errorf("testutil: %s: %w", key, cmdexec.ErrSpawn)}
}

// Run looks up the command in Responses and returns the matching response.
func (f *FakeRunner) Run(_ context.Context, env map[string]string, name string, args ...string) (cmdexec.Result, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	f.Calls = append(f.Calls, fullCmd)
	f.EnvCalls = append(f.EnvCalls, env)

	resp, ok := f.lookup(fullCmd)
	if !ok {
		return cmdexec.Result{}, fmt.Errorf("FakeRunner: no response registered for %q: %w", fullCmd, cmdexec.ErrSpawn)
	}
	if f.Hook != nil && resp.Err == nil {
		f.Hook(name, args)
	}
	return resp.Result, resp.Err
}

// RunInteractive records the call and delegates to Run logic.
func (f *FakeRunner) RunInteractive(ctx context.Context, env map[string]string, name string, args ...string) (int, error) {
	res, err := f.Run(ctx, env, name, args...)
	f.Interactive = append(f.Interactive, f.Calls[len(f.Calls)-1])
	return res.ExitCode, err
}

func (f *FakeRunner) lookup(fullCmd string) (Response, bool) {
	// Exact match first.
	if resp, ok := f.Responses[fullCmd]; ok {
		return resp, true
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range f.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return f.Responses[bestKey], true
	}

	if f.DefaultResponse != nil {
		return *f.DefaultResponse, true
	}
	return Response{}, false
}

// Called returns true if a command matching the given prefix was executed.
func (f *FakeRunner) Called(prefix string) bool {
	return f.CallCount(prefix) > 0
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (f *FakeRunner) CallCount(prefix string) int {
	count := 0
	for _, call := range f.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

var _ cmdexec.Runner = (*FakeRunner)(nil)
