package capability

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/osakit/osakit/pkg/command"
)

// tableFile mirrors one capability YAML file. Decoded with viper's
// mapstructure unmarshaling.
type tableFile struct {
	Application string        `mapstructure:"application"`
	AppVersion  string        `mapstructure:"appVersion"`
	Features    []featureFile `mapstructure:"features"`
}

type featureFile struct {
	Category string `mapstructure:"category"`
	Name     string `mapstructure:"name"`
	Status   string `mapstructure:"status"`
	Token    string `mapstructure:"token"`
	Note     string `mapstructure:"note"`
}

// LoadFile reads and validates a single capability table file. Every
// problem in the file is reported, not just the first, so an editor can
// fix a table in one pass.
func LoadFile(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read capability table %s", path)
	}

	var raw tableFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, errors.Wrapf(err, "failed to decode capability table %s", path)
	}

	table, err := build(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid capability table %s", path)
	}
	return table, nil
}

func build(raw tableFile) (*Table, error) {
	var result *multierror.Error

	app, err := command.ParseApplication(raw.Application)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if raw.AppVersion == "" {
		result = multierror.Append(result, errors.New("appVersion is required"))
	}
	if len(raw.Features) == 0 {
		result = multierror.Append(result, errors.New("features list is empty"))
	}

	t := &Table{
		app:     app,
		version: raw.AppVersion,
		rules:   make(map[string][]rule),
	}

	seen := make(map[Feature]bool)
	for i, f := range raw.Features {
		r, err := buildRule(f)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "feature %d", i+1))
			continue
		}
		key := Feature{Category: f.Category, Name: f.Name}
		if seen[key] {
			result = multierror.Append(result, errors.Errorf("feature %d: duplicate entry for %s", i+1, key))
			continue
		}
		seen[key] = true
		t.rules[f.Category] = append(t.rules[f.Category], r)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return t, nil
}

func buildRule(f featureFile) (rule, error) {
	if f.Category == "" {
		return rule{}, errors.New("category is required")
	}
	if f.Name == "" {
		return rule{}, errors.New("name is required")
	}

	var status Status
	switch Status(f.Status) {
	case StatusSupported, StatusBroken:
		status = Status(f.Status)
	case "":
		return rule{}, errors.New("status is required")
	default:
		return rule{}, errors.Errorf("unknown status %q", f.Status)
	}

	r := rule{
		name: f.Name,
		entry: Entry{
			Feature: Feature{Category: f.Category, Name: f.Name},
			Status:  status,
			Token:   f.Token,
			Note:    f.Note,
		},
	}

	// Names may be glob patterns to cover a whole family of features,
	// e.g. "document/*" defaulting a category.
	if strings.ContainsAny(f.Name, "*?[{") {
		g, err := glob.Compile(f.Name)
		if err != nil {
			return rule{}, errors.Wrapf(err, "invalid name pattern %q", f.Name)
		}
		r.pattern = g
	}
	return r, nil
}

// LoadDir loads every .yaml table under dir into a Set. Files are loaded
// in lexical order; two files for the same application is an error.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read capability directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, errors.Errorf("no capability tables found in %s", dir)
	}

	set := &Set{tables: make(map[command.Application]*Table)}
	for _, path := range paths {
		table, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if _, dup := set.tables[table.app]; dup {
			return nil, errors.Errorf("duplicate capability table for %s in %s", table.app, path)
		}
		set.tables[table.app] = table
	}
	return set, nil
}
