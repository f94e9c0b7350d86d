package manifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

const baseManifest = `{
  "name": "node-cli",
  "version": "0.1.0",
  "description": "Node CLI template",
  "type": "module",
  "bin": {},
  "scripts": {
    "start": "node index.js",
    "test": "node --test"
  },
  "keywords": ["cli", "node"],
  "dependencies": {
    "commander": "^11.1.0"
  },
  "devDependencies": {
    "eslint": "^8.56.0"
  }
}
`

var opts = Options{EntryPoint: "index.js"}

func boolPtr(b bool) *bool {
	return &b
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// keysOrder returns top-level keys of a JSON object in document order.
func keysOrder(t *testing.T, data []byte) []string {
	t.Helper()
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	_, err := decoder.Token()
	require.NoError(t, err)

	var keys []string
	for decoder.More() {
		token, err := decoder.Token()
		require.NoError(t, err)
		keys = append(keys, token.(string))
		var skip json.RawMessage
		require.NoError(t, decoder.Decode(&skip))
	}
	return keys
}

func TestComposeIsAdditive(t *testing.T) {
	cfg := create_ctx.ProjectConfig{ProjectName: "cli", ScopeName: "acme"}
	out, err := Compose([]byte(`{"name":"x","scripts":{"test":"t"}}`), cfg, opts)
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, "@acme/cli", doc["name"])
	assert.Equal(t, map[string]any{"test": "t"}, doc["scripts"])
	assert.NotContains(t, doc, "repository")
	assert.NotContains(t, doc, "engines")
	assert.NotContains(t, doc, "bin")
}

func TestComposeName(t *testing.T) {
	out, err := Compose([]byte(baseManifest), create_ctx.ProjectConfig{ProjectName: "demo"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "demo", decode(t, out)["name"])
}

func TestComposeBin(t *testing.T) {
	out, err := Compose([]byte(baseManifest), create_ctx.ProjectConfig{ProjectName: "my-tool"}, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"my-tool": "index.js"}, decode(t, out)["bin"])

	out, err = Compose([]byte(`{"bin":{"other":"other.js"}}`),
		create_ctx.ProjectConfig{ProjectName: "tool"}, Options{EntryPoint: "cli.js"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"other": "other.js", "tool": "cli.js"}, decode(t, out)["bin"])

	out, err = Compose([]byte(`{"bin":"./cli.js"}`),
		create_ctx.ProjectConfig{ProjectName: "tool"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "./cli.js", decode(t, out)["bin"])
}

func TestComposeRepository(t *testing.T) {
	tests := []struct {
		name     string
		cfg      create_ctx.ProjectConfig
		expected any
	}{
		{
			"both",
			create_ctx.ProjectConfig{ProjectName: "a", AuthorName: "Jane Doe",
				AuthorEmail: "jane@example.com"},
			map[string]any{"email": "jane@example.com", "name": "Jane Doe"},
		},
		{
			"email only",
			create_ctx.ProjectConfig{ProjectName: "a", AuthorEmail: "jane@example.com"},
			map[string]any{"email": "jane@example.com"},
		},
		{
			"name only",
			create_ctx.ProjectConfig{ProjectName: "a", AuthorName: "Tom & Jerry <tj>"},
			map[string]any{"name": "Tom & Jerry <tj>"},
		},
		{
			"none",
			create_ctx.ProjectConfig{ProjectName: "a"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compose([]byte(`{"repository":{"type":"git"}}`), tt.cfg, opts)
			require.NoError(t, err)
			doc := decode(t, out)
			if tt.expected == nil {
				assert.Equal(t, map[string]any{"type": "git"}, doc["repository"])
				return
			}
			assert.Equal(t, tt.expected, doc["repository"])
		})
	}
}

func TestComposeEngines(t *testing.T) {
	out, err := Compose([]byte(baseManifest), create_ctx.ProjectConfig{
		ProjectName: "a", NodeVersion: "^18.0.0"}, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"node": "^18.0.0"}, decode(t, out)["engines"])

	out, err = Compose([]byte(baseManifest), create_ctx.ProjectConfig{
		ProjectName: "a", NpmVersion: ">9"}, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"npm": ">9"}, decode(t, out)["engines"])
	assert.Contains(t, string(out), `"npm": ">9"`)

	out, err = Compose([]byte(baseManifest), create_ctx.ProjectConfig{
		ProjectName: "a", NodeVersion: "<20", NpmVersion: "~9.8"}, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"node": "<20", "npm": "~9.8"}, decode(t, out)["engines"])
}

func TestComposeHooks(t *testing.T) {
	cfg := create_ctx.ProjectConfig{ProjectName: "a", UseHooks: boolPtr(true)}
	out, err := Compose([]byte(baseManifest), cfg, opts)
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, map[string]any{"eslint": "^8.56.0", "husky": "^8.0.3"},
		doc["devDependencies"])
	assert.Equal(t, map[string]any{
		"start":       "node index.js",
		"test":        "node --test",
		"postinstall": "husky install",
	}, doc["scripts"])

	out, err = Compose([]byte(`{"scripts":{"postinstall":"old"}}`), cfg, opts)
	require.NoError(t, err)
	doc = decode(t, out)
	assert.Equal(t, map[string]any{"postinstall": "husky install"}, doc["scripts"])
	assert.Equal(t, map[string]any{"husky": "^8.0.3"}, doc["devDependencies"])

	cfg.UseHooks = boolPtr(false)
	out, err = Compose([]byte(baseManifest), cfg, opts)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "husky")
}

func TestComposeSerialization(t *testing.T) {
	cfg := create_ctx.ProjectConfig{
		ProjectName: "demo",
		AuthorName:  "Jane",
		NodeVersion: "^18.0.0",
		UseHooks:    boolPtr(true),
	}
	out, err := Compose([]byte(baseManifest), cfg, opts)
	require.NoError(t, err)

	expected := `{
  "name": "demo",
  "version": "0.1.0",
  "description": "Node CLI template",
  "type": "module",
  "bin": {
    "demo": "index.js"
  },
  "scripts": {
    "start": "node index.js",
    "test": "node --test",
    "postinstall": "husky install"
  },
  "keywords": [
    "cli",
    "node"
  ],
  "dependencies": {
    "commander": "^11.1.0"
  },
  "devDependencies": {
    "eslint": "^8.56.0",
    "husky": "^8.0.3"
  },
  "repository": {
    "name": "Jane"
  },
  "engines": {
    "node": "^18.0.0"
  }
}
`
	assert.Equal(t, expected, string(out))
	assert.Equal(t, []string{"name", "version", "description", "type", "bin", "scripts",
		"keywords", "dependencies", "devDependencies", "repository", "engines"},
		keysOrder(t, out))
}

func TestComposeInvalidManifest(t *testing.T) {
	cfg := create_ctx.ProjectConfig{ProjectName: "demo"}

	_, err := Compose([]byte(`{"name":`), cfg, opts)
	require.EqualError(t, err, "manifest is not a valid JSON")

	_, err = Compose([]byte(`["name"]`), cfg, opts)
	require.EqualError(t, err, "manifest must be a JSON object")
}

func TestLoadWrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/tmpl/package.json", []byte(baseManifest), 0644))

	base, err := Load(fsys, "/tmpl/package.json")
	require.NoError(t, err)

	out, err := Compose(base, create_ctx.ProjectConfig{ProjectName: "demo"}, opts)
	require.NoError(t, err)
	require.NoError(t, Write(fsys, "/app/package.json", out))

	written, err := afero.ReadFile(fsys, "/app/package.json")
	require.NoError(t, err)
	assert.Equal(t, out, written)
	assert.True(t, strings.HasSuffix(string(written), "}\n"))

	_, err = Load(fsys, "/missing/package.json")
	require.ErrorContains(t, err, "failed to read manifest")
}
