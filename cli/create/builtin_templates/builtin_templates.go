package builtin_templates

import (
	"embed"
	"io/fs"
	"path"
	"sort"

	"github.com/spf13/afero"
)

// TemplatesFs contains built-in templates. Files with names starting with
// a dot can't be embedded, they are stored with the ".hidden" suffix.
//
//go:embed templates/*
var TemplatesFs embed.FS

const (
	// templatesRoot is a TemplatesFs directory containing all templates.
	templatesRoot = "templates"
	// HooksBundle is a name of the git hooks bundle directory.
	HooksBundle = "husky"
	// DefaultTemplate is used if a template is not selected in non-interactive mode.
	DefaultTemplate = "node-cli"
)

// Template describes a built-in project template.
type Template struct {
	// Name is a template identifier users select.
	Name string
	// Description is a one line template description.
	Description string
	// Dir is a template directory name in TemplatesFs.
	Dir string
	// EntryPoint is a file bound to the project command in package.json "bin".
	EntryPoint string
}

// Path returns the template directory path in TemplatesFs.
func (t Template) Path() string {
	return path.Join(templatesRoot, t.Dir)
}

// registry maps template identifiers to templates.
var registry = map[string]Template{
	"node-cli": {
		Name:        "node-cli",
		Description: "Node.js command line application based on commander",
		Dir:         "node-cli",
		EntryPoint:  "index.js",
	},
}

// FileModes contains mapping of file modes by bundle directory name.
// Files not listed here are created with 0644 permissions.
var FileModes = map[string]map[string]fs.FileMode{
	"node-cli": {
		"index.js": 0755,
	},
	HooksBundle: {
		"pre-commit":     0755,
		"node-checks.sh": 0755,
	},
}

// Lookup returns a template by identifier.
func Lookup(name string) (Template, bool) {
	template, found := registry[name]
	return template, found
}

// Names returns sorted identifiers of all built-in templates.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns all built-in templates sorted by name.
func Templates() []Template {
	templates := make([]Template, 0, len(registry))
	for _, name := range Names() {
		templates = append(templates, registry[name])
	}
	return templates
}

// HooksBundlePath returns the git hooks bundle path in TemplatesFs.
func HooksBundlePath() string {
	return path.Join(templatesRoot, HooksBundle)
}

// Fs returns built-in templates as a read-only afero file system.
func Fs() afero.Fs {
	return afero.FromIOFS{FS: TemplatesFs}
}

// FileMode returns a function computing permissions of files copied from
// the dir bundle.
func FileMode(dir string) func(relPath string, srcMode fs.FileMode) fs.FileMode {
	modes := FileModes[dir]
	return func(relPath string, _ fs.FileMode) fs.FileMode {
		if mode, found := modes[relPath]; found {
			return mode
		}
		return 0644
	}
}
