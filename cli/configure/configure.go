package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/nodekit/scaffold/cli/cmdcontext"
	"github.com/nodekit/scaffold/cli/config"
	"github.com/nodekit/scaffold/cli/create/validate"
	"github.com/nodekit/scaffold/cli/util"
)

const (
	ConfigName = "scaffold.yaml"
	// appConfigDirName is a directory name in the user config directory.
	appConfigDirName  = "scaffold"
	configHomeEnvName = "XDG_CONFIG_HOME"
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	hooks := true
	return &config.CliOpts{
		Defaults: &config.DefaultsOpts{
			Hooks: &hooks,
		},
		Create: &config.CreateOpts{
			Staged: false,
		},
	}
}

// getUserConfigDir returns a directory to search the user config in.
func getUserConfigDir() (string, error) {
	if configHome := os.Getenv(configHomeEnvName); configHome != "" {
		return filepath.Join(configHome, appConfigDirName), nil
	}
	homeDir, err := util.GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appConfigDirName), nil
}

// getConfigPath returns the config file path. Explicitly set configPath
// must exist. Otherwise the working directory and the user config directory
// are checked. Empty string is returned if there is no config.
func getConfigPath(configPath, workDir string) (string, error) {
	if configPath != "" {
		found, err := util.GetYamlFileName(configPath, true)
		if err != nil {
			return "", fmt.Errorf("failed to find configuration file %q: %w", configPath, err)
		}
		return filepath.Abs(found)
	}

	candidates := []string{filepath.Join(workDir, ConfigName)}
	if userConfigDir, err := getUserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userConfigDir, ConfigName))
	} else {
		log.Debugf("Failed to get user config directory: %s", err)
	}

	for _, candidate := range candidates {
		found, err := util.GetYamlFileName(candidate, false)
		if err != nil {
			return "", err
		}
		if found != "" {
			return filepath.Abs(found)
		}
	}

	return "", nil
}

// Cli performs initial CLI configuration: sets log level and locates
// the configuration file.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	if cmdCtx.Cli.ConfigPath, err = getConfigPath(cmdCtx.Cli.ConfigPath, workDir); err != nil {
		return err
	}

	if cmdCtx.Cli.ConfigPath == "" {
		cmdCtx.Cli.ConfigDir = workDir
		log.Debug("No configuration file found, using defaults.")
	} else {
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
		log.Debugf("Using configuration file %s", cmdCtx.Cli.ConfigPath)
	}

	return nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// validateCliOpts checks configured prompt defaults.
func validateCliOpts(cliOpts *config.CliOpts) error {
	defaults := cliOpts.Defaults
	if err := validate.ScopeName(defaults.Scope); err != nil {
		return fmt.Errorf("defaults.scope: %w", err)
	}
	if err := validate.VersionConstraint(defaults.NodeVersion); err != nil {
		return fmt.Errorf("defaults.node_version: %w", err)
	}
	if err := validate.VersionConstraint(defaults.NpmVersion); err != nil {
		return fmt.Errorf("defaults.npm_version: %w", err)
	}
	return nil
}

// GetCliOpts returns CLI options from the config file located at
// configPath. Default options are returned if configPath is empty.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	if configPath == "" {
		return GetDefaultCliOpts(), nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CLI configuration: %s", err)
	}

	cfg := config.Config{}
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse CLI configuration: %s", err)
	}
	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse CLI configuration: missing scaffold section")
	}

	// Sections set to null are replaced with defaults.
	defaults := GetDefaultCliOpts()
	if cfg.CliConfig.Defaults == nil {
		cfg.CliConfig.Defaults = defaults.Defaults
	}
	if cfg.CliConfig.Defaults.Hooks == nil {
		cfg.CliConfig.Defaults.Hooks = defaults.Defaults.Hooks
	}
	if cfg.CliConfig.Create == nil {
		cfg.CliConfig.Create = defaults.Create
	}

	if err := validateCliOpts(cfg.CliConfig); err != nil {
		return nil, fmt.Errorf("invalid CLI configuration: %s", err)
	}

	return cfg.CliConfig, nil
}
