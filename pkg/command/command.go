// Package command defines the structured automation commands the compiler
// accepts. A Command describes one desired mutation against PowerPoint,
// Word, or Excel on macOS; it carries everything needed to render the
// AppleScript invocation but performs no rendering itself.
package command

import "fmt"

// Application identifies the target host application. The value is the
// exact name the application registers with the scripting bridge.
type Application string

const (
	PowerPoint Application = "Microsoft PowerPoint"
	Word       Application = "Microsoft Word"
	Excel      Application = "Microsoft Excel"
)

// Valid reports whether the application is one of the three supported hosts.
func (a Application) Valid() bool {
	switch a {
	case PowerPoint, Word, Excel:
		return true
	}
	return false
}

// Key returns the lowercase identifier used in capability table files.
func (a Application) Key() string {
	switch a {
	case PowerPoint:
		return "powerpoint"
	case Word:
		return "word"
	case Excel:
		return "excel"
	}
	return ""
}

// ParseApplication resolves a capability-file key or display name.
func ParseApplication(s string) (Application, error) {
	switch s {
	case "powerpoint", string(PowerPoint):
		return PowerPoint, nil
	case "word", string(Word):
		return Word, nil
	case "excel", string(Excel):
		return Excel, nil
	}
	return "", &MalformedError{Reason: fmt.Sprintf("unknown application %q", s)}
}

// Command is the tagged variant over all supported automation actions.
// Validate performs structural validation only; capability validation is
// the compiler's job.
type Command interface {
	Application() Application
	Validate() error
}

// MalformedError reports a structurally invalid command: a missing
// required field or an index outside the declared 1-based range. It is
// always raised before any rendering happens.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed command: %s", e.Reason)
}

func malformed(format string, args ...any) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

// documentNoun is the scripting dictionary's word for the top-level
// document object of each application.
func documentNoun(app Application) string {
	switch app {
	case PowerPoint:
		return "presentation"
	case Excel:
		return "workbook"
	default:
		return "document"
	}
}

// requireIndex rejects indices below 1. Slides, rows, columns, shapes and
// paragraphs are all 1-based in the scripting dictionaries; out-of-range
// values are rejected, never clamped.
func requireIndex(name string, n int) error {
	if n < 1 {
		return malformed("%s must be a 1-based index, got %d", name, n)
	}
	return nil
}
