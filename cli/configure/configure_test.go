package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodekit/scaffold/cli/cmdcontext"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestGetCliOptsDefault(t *testing.T) {
	cliOpts, err := GetCliOpts("")
	require.NoError(t, err)
	require.NotNil(t, cliOpts.Defaults)
	require.NotNil(t, cliOpts.Defaults.Hooks)
	assert.True(t, *cliOpts.Defaults.Hooks)
	assert.False(t, cliOpts.Create.Staged)
}

func TestGetCliOpts(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `scaffold:
  defaults:
    scope: acme
    author_name: Jane Doe
    author_email: jane@example.com
    node_version: ^18.0.0
    hooks: false
  create:
    staged: true
`)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, "acme", cliOpts.Defaults.Scope)
	assert.Equal(t, "Jane Doe", cliOpts.Defaults.AuthorName)
	assert.Equal(t, "jane@example.com", cliOpts.Defaults.AuthorEmail)
	assert.Equal(t, "^18.0.0", cliOpts.Defaults.NodeVersion)
	assert.Equal(t, "", cliOpts.Defaults.NpmVersion)
	require.NotNil(t, cliOpts.Defaults.Hooks)
	assert.False(t, *cliOpts.Defaults.Hooks)
	assert.True(t, cliOpts.Create.Staged)
}

func TestGetCliOptsPartial(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "scaffold:\n  create:\n    staged: true\n")

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.True(t, cliOpts.Create.Staged)
	require.NotNil(t, cliOpts.Defaults.Hooks)
	assert.True(t, *cliOpts.Defaults.Hooks)
}

func TestGetCliOptsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			"unknown key",
			"scaffold:\n  create:\n    force: true\n",
			"failed to parse CLI configuration",
		},
		{
			"missing section",
			"scaffold:\n",
			"missing scaffold section",
		},
		{
			"invalid scope",
			"scaffold:\n  defaults:\n    scope: acme-\n",
			"defaults.scope: Invalid scope name",
		},
		{
			"invalid node version",
			"scaffold:\n  defaults:\n    node_version: latest\n",
			"defaults.node_version: Invalid version",
		},
		{
			"invalid yaml",
			"scaffold: [\n",
			"failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), tt.content)
			_, err := GetCliOpts(configPath)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestConfigureCli(t *testing.T) {
	workDir := t.TempDir()
	t.Setenv(configHomeEnvName, t.TempDir())
	chdir(t, workDir)

	var cmdCtx cmdcontext.CmdCtx
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, "", cmdCtx.Cli.ConfigPath)

	configPath := writeConfig(t, workDir, "scaffold:\n")
	cmdCtx = cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	expected, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(cmdCtx.Cli.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, filepath.Dir(cmdCtx.Cli.ConfigPath), cmdCtx.Cli.ConfigDir)
}

func TestConfigureCliUserConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv(configHomeEnvName, configHome)
	chdir(t, t.TempDir())

	userConfigDir := filepath.Join(configHome, appConfigDirName)
	require.NoError(t, os.MkdirAll(userConfigDir, 0755))
	configPath := writeConfig(t, userConfigDir, "scaffold:\n")

	var cmdCtx cmdcontext.CmdCtx
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, configPath, cmdCtx.Cli.ConfigPath)
}

func TestConfigureCliExplicitConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cmdCtx := cmdcontext.CmdCtx{Cli: cmdcontext.CliCtx{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	}}
	require.ErrorContains(t, Cli(&cmdCtx), "failed to find configuration file")

	configPath := writeConfig(t, t.TempDir(), "scaffold:\n")
	cmdCtx.Cli.ConfigPath = configPath
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, configPath, cmdCtx.Cli.ConfigPath)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldwd))
	})
}
