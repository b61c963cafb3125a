// Package skills discovers the AppleScript guidance documents that ship
// alongside the compiler. Each document is a directory holding a SKILL.md
// with YAML frontmatter naming the skill, its purpose, and the Office
// application it covers; the body is prose about the dictionary's quirks
// for an agent to read before choosing commands.
package skills

import (
	"github.com/osakit/osakit/pkg/command"
)

const skillFileName = "SKILL.md"

// Document is one discovered guidance document.
type Document struct {
	Name        string
	Description string
	// Application the document covers; empty when the frontmatter names
	// no application.
	Application command.Application
	Directory   string
	// Content is the SKILL.md body with the frontmatter stripped.
	Content string
}

// metadata mirrors the YAML frontmatter of a SKILL.md.
type metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Application string `yaml:"application"`
}
