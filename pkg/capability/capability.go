// Package capability holds the empirical record of which scripting
// properties and constants each Office application actually honors. The
// record cannot be discovered programmatically -- the applications accept
// and then silently ignore broken properties -- so it lives in versioned,
// human-editable YAML files and is loaded once at start.
package capability

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/osakit/osakit/pkg/command"
)

// Status records whether a feature is known to work.
type Status string

const (
	// StatusSupported means the feature was verified against the real
	// application.
	StatusSupported Status = "supported"
	// StatusBroken means the application accepts the syntax but ignores or
	// mangles the result.
	StatusBroken Status = "broken"
)

// Feature is one capability key: a category plus a name within it, e.g.
// layout/titleSlide or transition/speed.
type Feature struct {
	Category string
	Name     string
}

func (f Feature) String() string {
	return f.Category + "/" + f.Name
}

// Entry is the resolved record for one feature.
type Entry struct {
	Feature Feature
	Status  Status
	// Token is the AppleScript constant the feature renders to, when the
	// dictionary uses an enumeration (layouts, effects, shape types).
	Token string
	// Note is free-form context from the person who tested the feature.
	Note string
}

type rule struct {
	name    string
	pattern glob.Glob // nil for exact-name rules
	entry   Entry
}

// Table is the immutable capability record for one application. Lookups
// are safe for concurrent use; a Table is never mutated after Load.
type Table struct {
	app     command.Application
	version string
	rules   map[string][]rule // keyed by category, file order preserved
}

// Application returns which host the table describes.
func (t *Table) Application() command.Application { return t.app }

// Version returns the tested application version recorded in the file.
func (t *Table) Version() string { return t.version }

// Lookup resolves a feature. Exact-name rules win over glob rules; among
// glob rules the first match in file order wins. A feature with no rule at
// all is unknown, which callers must treat as unsupported -- the table is
// authoritative and silence is not consent.
func (t *Table) Lookup(f Feature) (Entry, bool) {
	rules := t.rules[f.Category]
	var globMatch *Entry
	for i := range rules {
		r := &rules[i]
		if r.pattern == nil {
			if r.name == f.Name {
				e := r.entry
				e.Feature = f
				return e, true
			}
			continue
		}
		if globMatch == nil && r.pattern.Match(f.Name) {
			e := r.entry
			e.Feature = f
			globMatch = &e
		}
	}
	if globMatch != nil {
		return *globMatch, true
	}
	return Entry{}, false
}

// Supported reports whether the feature is present and verified working.
func (t *Table) Supported(f Feature) bool {
	e, ok := t.Lookup(f)
	return ok && e.Status == StatusSupported
}

// Token returns the AppleScript constant for a supported enumerated
// feature.
func (t *Table) Token(f Feature) (string, bool) {
	e, ok := t.Lookup(f)
	if !ok || e.Status != StatusSupported || e.Token == "" {
		return "", false
	}
	return e.Token, true
}

// Set groups the loaded tables by application.
type Set struct {
	tables map[command.Application]*Table
}

// NewSet builds a set from already-loaded tables.
func NewSet(tables ...*Table) *Set {
	s := &Set{tables: make(map[command.Application]*Table, len(tables))}
	for _, t := range tables {
		s.tables[t.app] = t
	}
	return s
}

// For returns the table for an application.
func (s *Set) For(app command.Application) (*Table, error) {
	t, ok := s.tables[app]
	if !ok {
		return nil, fmt.Errorf("no capability table loaded for %s", app)
	}
	return t, nil
}

// Applications lists the applications the set covers.
func (s *Set) Applications() []command.Application {
	apps := make([]command.Application, 0, len(s.tables))
	for app := range s.tables {
		apps = append(apps, app)
	}
	return apps
}
