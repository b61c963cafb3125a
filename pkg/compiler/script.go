package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osakit/osakit/pkg/command"
)

// Script is the rendered AppleScript for one command. It has no identity
// beyond the command that produced it; there is no way back from text to
// command.
type Script struct {
	Application command.Application
	Source      string
}

// builder accumulates the body lines of a tell block.
type builder struct {
	lines []string
}

func (b *builder) linef(format string, args ...any) {
	if len(args) == 0 {
		b.lines = append(b.lines, format)
		return
	}
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// wrap produces the final tell block. Body lines are tab-indented, which
// osascript accepts verbatim.
func (b *builder) wrap(app command.Application) string {
	var sb strings.Builder
	sb.WriteString(`tell application "`)
	sb.WriteString(string(app))
	sb.WriteString("\"\n")
	for _, line := range b.lines {
		sb.WriteByte('\t')
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("end tell")
	return sb.String()
}

// quote renders an AppleScript string literal. Only backslash and the
// double quote need escaping; control characters are normalized so a
// multi-line value cannot break out of the literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// number renders a numeric literal; -1 precision keeps the shortest exact
// form so output stays byte-stable across calls.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// value renders a cell value literal.
func value(v command.Value) string {
	if s, ok := v.IsText(); ok {
		return quote(s)
	}
	if n, ok := v.IsNumber(); ok {
		return number(n)
	}
	if b, ok := v.IsBool(); ok {
		return boolean(b)
	}
	// Validate rejects the zero value before rendering is reached.
	return `""`
}

func boolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// rgb renders a {r, g, b} triple.
func rgb(c command.RGB) string {
	return "{" + strconv.Itoa(c.Red) + ", " + strconv.Itoa(c.Green) + ", " + strconv.Itoa(c.Blue) + "}"
}

// ref renders a target reference with the dictionary noun, e.g.
// "active presentation", "document 2", `workbook "Budget.xlsx"`.
func ref(r command.Ref, noun string) string {
	switch {
	case r.Active():
		return "active " + noun
	case r.Name() != "":
		return noun + " " + quote(r.Name())
	default:
		return noun + " " + strconv.Itoa(r.Index())
	}
}

// sheetRef renders a worksheet reference. The active sheet is the host's
// ambient selector; indexed and named sheets resolve inside the active
// workbook.
func sheetRef(r command.Ref) string {
	switch {
	case r.Active():
		return "active sheet"
	case r.Name() != "":
		return "worksheet " + quote(r.Name()) + " of active workbook"
	default:
		return "worksheet " + strconv.Itoa(r.Index()) + " of active workbook"
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func saving(b bool) string {
	if b {
		return "saving yes"
	}
	return "saving no"
}
