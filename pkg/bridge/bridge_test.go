package bridge

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osakit/osakit/pkg/command"
	"github.com/osakit/osakit/pkg/compiler"
)

// fakeOsascript writes a shell script standing in for the real binary so
// the runner's process handling is testable off-macOS.
func fakeOsascript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osascript")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func testScript(source string) compiler.Script {
	return compiler.Script{Application: command.Excel, Source: source}
}

func TestRunCapturesOutput(t *testing.T) {
	binary := fakeOsascript(t, `echo "result line"`)
	runner := NewRunner(WithBinary(binary))

	result, err := runner.Run(context.Background(), testScript("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "result line", result.Stdout)
	assert.NotEmpty(t, result.ExecutionID)
}

func TestRunPropagatesBridgeError(t *testing.T) {
	binary := fakeOsascript(t, `echo "execution error: Microsoft Excel got an error: syntax error (-2741)" >&2; exit 1`)
	runner := NewRunner(WithBinary(binary))

	_, err := runner.Run(context.Background(), testScript("ignored"))
	require.Error(t, err)

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Contains(t, invErr.Stderr, "-2741")
	assert.NotEmpty(t, invErr.ExecutionID)
}

func TestRunRetriesWhileLaunching(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ready")
	// first invocation reports the app as not running, later ones succeed
	binary := fakeOsascript(t, `
if [ ! -f `+marker+` ]; then
  touch `+marker+`
  echo "Microsoft Excel got an error: Application isn't running. (-600)" >&2
  exit 1
fi
echo "ok"`)

	runner := NewRunner(WithBinary(binary), WithLaunchRetries(3, time.Millisecond))

	result, err := runner.Run(context.Background(), testScript("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Stdout)
}

func TestRunDoesNotRetryScriptErrors(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "count")
	binary := fakeOsascript(t, `
echo x >> `+counter+`
echo "syntax error: Expected end of line (-2741)" >&2
exit 1`)

	runner := NewRunner(WithBinary(binary), WithLaunchRetries(5, time.Millisecond))

	_, err := runner.Run(context.Background(), testScript("ignored"))
	require.Error(t, err)

	data, readErr := os.ReadFile(counter)
	require.NoError(t, readErr)
	assert.Equal(t, "x\n", string(data), "script errors must surface on the first attempt")
}

func TestRunHonorsTimeout(t *testing.T) {
	binary := fakeOsascript(t, "exec sleep 5")
	runner := NewRunner(WithBinary(binary), WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := runner.Run(context.Background(), testScript("ignored"))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestIsLaunching(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   bool
	}{
		{"not running code", "Application isn't running. (-600)", true},
		{"invalid connection code", "connection is invalid (-609)", true},
		{"syntax error", "Expected end of line (-2741)", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &InvocationError{Stderr: tt.stderr, Err: errors.New("exit status 1")}
			assert.Equal(t, tt.want, isLaunching(err))
		})
	}

	t.Run("other error types never retry", func(t *testing.T) {
		assert.False(t, isLaunching(errors.New("plain failure")))
	})
}
