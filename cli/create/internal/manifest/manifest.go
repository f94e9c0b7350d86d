// Package manifest generates the package.json of a new project from the
// template base manifest.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

const (
	// FileName is a manifest file name in a template and in a project.
	FileName = "package.json"

	// HookManager is a dev dependency installing git hooks.
	HookManager = "husky"
	// HookManagerVersion is a pinned version range of HookManager.
	HookManagerVersion = "^8.0.3"
	// HookManagerInstall is a postinstall command of HookManager.
	HookManagerInstall = "husky install"

	// PackageManager is an engine name for the package manager constraint.
	PackageManager = "npm"

	filePermissions = os.FileMode(0644)
)

// Options are template-specific composition options.
type Options struct {
	// EntryPoint is a file the project command is bound to in "bin".
	EntryPoint string
}

var prettyOptions = &pretty.Options{
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
	// Arrays are never collapsed to a single line.
	Width: 0,
}

// Compose merges project description into the base manifest. Fields it does
// not know about are kept as is and in the same order.
func Compose(base []byte, cfg create_ctx.ProjectConfig, opts Options) ([]byte, error) {
	if !gjson.ValidBytes(base) {
		return nil, fmt.Errorf("manifest is not a valid JSON")
	}
	if !gjson.ParseBytes(base).IsObject() {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}

	doc := append([]byte(nil), base...)
	var err error

	name := cfg.ProjectName
	if cfg.ScopeName != "" {
		name = "@" + cfg.ScopeName + "/" + cfg.ProjectName
	}
	if doc, err = setString(doc, "name", name); err != nil {
		return nil, err
	}

	if gjson.GetBytes(doc, "bin").IsObject() {
		if doc, err = setString(doc, "bin."+escapeKey(cfg.ProjectName), opts.EntryPoint); err != nil {
			return nil, err
		}
	}

	if cfg.AuthorEmail != "" || cfg.AuthorName != "" {
		repository, err := object([2]string{"email", cfg.AuthorEmail},
			[2]string{"name", cfg.AuthorName})
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "repository", repository); err != nil {
			return nil, fmt.Errorf("failed to set repository: %w", err)
		}
	}

	if cfg.HasEngineConstraints() {
		engines, err := object([2]string{"node", cfg.NodeVersion},
			[2]string{PackageManager, cfg.NpmVersion})
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "engines", engines); err != nil {
			return nil, fmt.Errorf("failed to set engines: %w", err)
		}
	}

	if cfg.HooksEnabled() {
		if doc, err = setString(doc, "devDependencies."+HookManager, HookManagerVersion); err != nil {
			return nil, err
		}
		if doc, err = setString(doc, "scripts.postinstall", HookManagerInstall); err != nil {
			return nil, err
		}
	}

	return pretty.PrettyOptions(doc, prettyOptions), nil
}

// Load reads a base manifest.
func Load(fsys afero.Fs, manifestPath string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return data, nil
}

// Write writes a composed manifest.
func Write(fsys afero.Fs, manifestPath string, data []byte) error {
	if err := afero.WriteFile(fsys, manifestPath, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// object builds a JSON object from non-empty key/value pairs.
func object(fields ...[2]string) ([]byte, error) {
	doc := []byte("{}")
	var err error
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		if doc, err = setString(doc, escapeKey(field[0]), field[1]); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// setString sets a string value without HTML escaping.
func setString(doc []byte, path, value string) ([]byte, error) {
	raw, err := marshalString(value)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetRawBytes(doc, path, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to set %q: %w", path, err)
	}
	return doc, nil
}

func marshalString(value string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// escapeKey escapes path syntax characters of a single key.
func escapeKey(key string) string {
	var buf bytes.Buffer
	for _, c := range key {
		switch c {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			buf.WriteByte('\\')
		}
		buf.WriteRune(c)
	}
	return buf.String()
}
