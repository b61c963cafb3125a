// Package compiler turns structured automation commands into AppleScript
// text for Microsoft PowerPoint, Word, and Excel. It is a single-pass
// validate-then-render pipeline: structural validation first, then every
// referenced property or constant is checked against the capability table,
// then the command renders to a tell block. The compiler never invokes the
// host application; pass the result to the bridge package for that.
//
// Compile is a pure function of the command and the table: identical input
// yields byte-identical output, and a Compiler over an immutable Set is
// safe for concurrent use.
package compiler

import (
	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// Compiler validates commands against a capability set and renders them.
type Compiler struct {
	tables *capability.Set
}

// New builds a compiler over the given capability set.
func New(tables *capability.Set) *Compiler {
	return &Compiler{tables: tables}
}

// Compile validates and renders one command.
//
// Failure modes: *command.MalformedError for structural problems,
// *UnsupportedFeatureError when any referenced feature is broken or
// unknown. A command with one unsupported field fails whole; there is no
// best-effort rendering.
func (c *Compiler) Compile(cmd command.Command) (Script, error) {
	if cmd == nil {
		return Script{}, &command.MalformedError{Reason: "nil command"}
	}
	if err := cmd.Validate(); err != nil {
		return Script{}, err
	}

	app := cmd.Application()
	table, err := c.tables.For(app)
	if err != nil {
		return Script{}, err
	}

	for _, feature := range requiredFeatures(cmd) {
		entry, ok := table.Lookup(feature)
		if !ok {
			return Script{}, &UnsupportedFeatureError{Application: app, Feature: feature}
		}
		if entry.Status != capability.StatusSupported {
			return Script{}, &UnsupportedFeatureError{Application: app, Feature: feature, Note: entry.Note}
		}
	}

	b := &builder{}
	switch app {
	case command.PowerPoint:
		err = renderPowerPoint(b, table, cmd)
	case command.Word:
		err = renderWord(b, table, cmd)
	case command.Excel:
		err = renderExcel(b, table, cmd)
	default:
		err = errors.Errorf("no renderer for application %q", app)
	}
	if err != nil {
		return Script{}, err
	}

	return Script{Application: app, Source: b.wrap(app)}, nil
}

// requiredFeatures lists every capability the command depends on. The
// list covers constants (layouts, effects, shape types) and property
// accessors alike; all of them must be supported for the command to
// render.
func requiredFeatures(cmd command.Command) []capability.Feature {
	switch c := cmd.(type) {
	case command.CreateDocument:
		return []capability.Feature{{Category: "document", Name: "create"}}
	case command.OpenDocument:
		return []capability.Feature{{Category: "document", Name: "open"}}
	case command.SaveDocument:
		return []capability.Feature{{Category: "document", Name: "save"}}
	case command.CloseDocument:
		return []capability.Feature{{Category: "document", Name: "close"}}
	case command.AddSlide:
		return []capability.Feature{{Category: "layout", Name: string(c.Layout)}}
	case command.SetShapeText:
		return []capability.Feature{{Category: "shape", Name: "text"}}
	case command.SetFontProperty:
		return []capability.Feature{{Category: "font", Name: string(c.Property)}}
	case command.AddPicture:
		return []capability.Feature{{Category: "picture", Name: "insert"}}
	case command.AddShape:
		return []capability.Feature{{Category: "shape", Name: string(c.Shape)}}
	case command.ApplyTransition:
		features := []capability.Feature{{Category: "transition", Name: string(c.Effect)}}
		if c.Speed != "" {
			features = append(features, capability.Feature{Category: "transition", Name: "speed"})
		}
		return features
	case command.SetCellValue:
		return []capability.Feature{{Category: "range", Name: "value"}}
	case command.SetFormula:
		return []capability.Feature{{Category: "range", Name: "formula"}}
	case command.SetRange:
		return []capability.Feature{{Category: "range", Name: "value"}}
	case command.CreateTextRange:
		return []capability.Feature{{Category: "range", Name: "create"}}
	case command.FindReplace:
		return []capability.Feature{{Category: "find", Name: "replace"}}
	case command.AddTable:
		return []capability.Feature{{Category: "table", Name: "insert"}}
	case command.SetHeaderFooter:
		return []capability.Feature{{Category: "headerFooter", Name: string(c.Kind)}}
	}
	return nil
}

// token fetches the AppleScript constant for an enumerated feature. The
// feature passed capability validation already, so a missing token is a
// table authoring bug, not a caller error.
func token(t *capability.Table, f capability.Feature) (string, error) {
	tok, ok := t.Token(f)
	if !ok {
		return "", errors.Errorf("capability table for %s lists %s without a syntax token", t.Application(), f)
	}
	return tok, nil
}
