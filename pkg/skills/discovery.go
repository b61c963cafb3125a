package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/osakit/osakit/pkg/command"
)

// Discovery finds guidance documents under configured directories.
type Discovery struct {
	dirs []string
}

// Option configures a Discovery.
type Option func(*Discovery) error

// WithDirs sets the directories to scan, in precedence order.
func WithDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.dirs = dirs
		return nil
	}
}

// WithDefaultDirs scans the repo-local skills directory, then the user's.
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.dirs = []string{
			"./skills",
			filepath.Join(homeDir, ".osakit", "skills"),
		}
		return nil
	}
}

// NewDiscovery builds a Discovery; with no options the defaults apply.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}
	if len(opts) == 0 {
		opts = []Option{WithDefaultDirs()}
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Discover returns all documents keyed by name. The first directory to
// define a name wins; later directories cannot shadow it.
func (d *Discovery) Discover() (map[string]*Document, error) {
	docs := make(map[string]*Document)
	for _, dir := range d.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dirPath := filepath.Join(dir, entry.Name())
			doc, err := loadDocument(filepath.Join(dirPath, skillFileName))
			if err != nil {
				continue
			}
			if _, exists := docs[doc.Name]; !exists {
				doc.Directory = dirPath
				docs[doc.Name] = doc
			}
		}
	}
	return docs, nil
}

// For returns the documents covering one application.
func (d *Discovery) For(app command.Application) ([]*Document, error) {
	docs, err := d.Discover()
	if err != nil {
		return nil, err
	}
	var matched []*Document
	for _, doc := range docs {
		if doc.Application == app {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// Get returns one document by name.
func (d *Discovery) Get(name string) (*Document, error) {
	docs, err := d.Discover()
	if err != nil {
		return nil, err
	}
	doc, exists := docs[name]
	if !exists {
		return nil, errors.Errorf("skill document %q not found", name)
	}
	return doc, nil
}

func loadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill document")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	pctx := parser.NewContext()
	var buf bytes.Buffer
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse skill document")
	}

	raw := meta.Get(pctx)
	if raw == nil {
		return nil, errors.New("missing frontmatter")
	}

	var m metadata
	m.Name, _ = raw["name"].(string)
	m.Description, _ = raw["description"].(string)
	m.Application, _ = raw["application"].(string)

	if m.Name == "" {
		return nil, errors.New("skill document frontmatter requires a name")
	}
	if m.Description == "" {
		return nil, errors.New("skill document frontmatter requires a description")
	}

	doc := &Document{
		Name:        m.Name,
		Description: m.Description,
		Content:     stripFrontmatter(string(content)),
	}
	if m.Application != "" {
		app, err := command.ParseApplication(m.Application)
		if err != nil {
			return nil, errors.Wrapf(err, "skill document %q", m.Name)
		}
		doc.Application = app
	}
	return doc, nil
}

func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return content
}
