package builtin_templates

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	template, found := Lookup("node-cli")
	require.True(t, found)
	assert.Equal(t, "templates/node-cli", template.Path())
	assert.Equal(t, "index.js", template.EntryPoint)

	_, found = Lookup("python-cli")
	assert.False(t, found)
	_, found = Lookup(HooksBundle)
	assert.False(t, found)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"node-cli"}, Names())
	require.Len(t, Templates(), 1)
	assert.Equal(t, "node-cli", Templates()[0].Name)
	assert.Contains(t, Names(), DefaultTemplate)
}

func TestTemplatesAreEmbedded(t *testing.T) {
	for _, template := range Templates() {
		data, err := fs.ReadFile(TemplatesFs, path.Join(template.Path(), "package.json"))
		require.NoError(t, err, template.Name)

		var manifest map[string]any
		require.NoError(t, json.Unmarshal(data, &manifest), template.Name)

		_, err = fs.Stat(TemplatesFs, path.Join(template.Path(), template.EntryPoint))
		require.NoError(t, err, template.Name)
	}

	data, err := fs.ReadFile(TemplatesFs, path.Join(HooksBundlePath(), "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n<node-checks>\n")

	_, err = fs.Stat(TemplatesFs, path.Join(HooksBundlePath(), "node-checks.sh"))
	require.NoError(t, err)
}

func TestNoDotfilesEmbedded(t *testing.T) {
	err := fs.WalkDir(TemplatesFs, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		assert.False(t, strings.HasPrefix(d.Name(), "."), p)
		return nil
	})
	require.NoError(t, err)
}

func TestFs(t *testing.T) {
	entries, err := afero.ReadDir(Fs(), HooksBundlePath())
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"pre-commit", "node-checks.sh"}, names)
}

func TestFileMode(t *testing.T) {
	hooksMode := FileMode(HooksBundle)
	assert.Equal(t, fs.FileMode(0755), hooksMode("pre-commit", 0444))
	assert.Equal(t, fs.FileMode(0644), hooksMode("README.md", 0444))

	templateMode := FileMode("node-cli")
	assert.Equal(t, fs.FileMode(0755), templateMode("index.js", 0444))
	assert.Equal(t, fs.FileMode(0644), templateMode("src/commands/index.js", 0444))

	assert.Equal(t, fs.FileMode(0644), FileMode("unknown")("index.js", 0444))
}
