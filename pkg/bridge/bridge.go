// Package bridge hands rendered scripts to the OS scripting bridge via
// osascript. It is the external collaborator the compiler deliberately is
// not: execution has side effects, races against the host application's
// ambient active-document state, and can fail for reasons no amount of
// compile-time validation prevents. Bridge failures are propagated to the
// caller unmodified; the one transient case worth retrying here is the
// host application still launching.
package bridge

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/compiler"
	"github.com/osakit/osakit/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Runner executes rendered scripts through osascript.
type Runner struct {
	binary   string
	timeout  time.Duration
	attempts uint
	delay    time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithBinary overrides the osascript binary path, mostly for tests.
func WithBinary(path string) Option {
	return func(r *Runner) { r.binary = path }
}

// WithTimeout bounds one osascript invocation. The default is 30s, which
// covers Office's worst-case document open on a cold start.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithLaunchRetries sets how many times a "not running" failure is
// retried while the host application launches, and the pause between
// attempts.
func WithLaunchRetries(attempts uint, delay time.Duration) Option {
	return func(r *Runner) {
		r.attempts = attempts
		r.delay = delay
	}
}

// NewRunner builds a runner with defaults: system osascript, 30s timeout,
// three launch retries two seconds apart.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		binary:   "osascript",
		timeout:  defaultTimeout,
		attempts: 3,
		delay:    2 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is one completed bridge invocation.
type Result struct {
	// ExecutionID correlates log lines for one invocation.
	ExecutionID string
	Stdout      string
	Stderr      string
}

// InvocationError is a bridge-level failure: the host application was
// unavailable or rejected the script at runtime. The compiler guarantees
// well-formed syntax, so a syntax error here means the capability tables
// and the installed application version disagree.
type InvocationError struct {
	ExecutionID string
	Stderr      string
	Err         error
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return "bridge invocation failed: " + e.Stderr
	}
	return "bridge invocation failed: " + e.Err.Error()
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Run executes a rendered script and returns its textual result. Only
// host-still-launching failures are retried; everything else surfaces on
// the first attempt. Rendering is pure, so there is never a reason to
// recompile between attempts.
func (r *Runner) Run(ctx context.Context, script compiler.Script) (*Result, error) {
	executionID := uuid.NewString()
	log := logger.G(ctx).WithField("execution_id", executionID).WithField("application", string(script.Application))

	var result *Result
	err := retry.Do(
		func() error {
			var err error
			result, err = r.invoke(ctx, executionID, script.Source)
			return err
		},
		retry.RetryIf(isLaunching),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).WithField("attempt", n+1).Warn("host application not ready, retrying bridge invocation")
		}),
	)
	if err != nil {
		log.WithError(err).Debug("bridge invocation failed")
		return nil, err
	}

	log.Debug("bridge invocation succeeded")
	return result, nil
}

func (r *Runner) invoke(ctx context.Context, executionID, source string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, "-e", source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = errors.Wrap(ctx.Err(), "osascript timed out")
		}
		return nil, &InvocationError{
			ExecutionID: executionID,
			Stderr:      strings.TrimSpace(stderr.String()),
			Err:         err,
		}
	}

	return &Result{
		ExecutionID: executionID,
		Stdout:      strings.TrimSpace(stdout.String()),
		Stderr:      strings.TrimSpace(stderr.String()),
	}, nil
}

// isLaunching recognizes the bridge errors the scripting bridge emits
// while an application is not yet ready to take events: -600 "isn't
// running" and -609 "connection is invalid" during launch.
func isLaunching(err error) bool {
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		return false
	}
	stderr := invErr.Stderr
	return strings.Contains(stderr, "-600") ||
		strings.Contains(stderr, "-609") ||
		strings.Contains(stderr, "isn't running") ||
		strings.Contains(stderr, "connection is invalid")
}
