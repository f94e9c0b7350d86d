package create_ctx

// ProjectConfig is a description of the project to create. It is collected
// once and is not changed after that.
type ProjectConfig struct {
	// ProjectName is a name of the project and of its directory.
	ProjectName string `mapstructure:"project_name" yaml:"project_name"`
	// ScopeName is an optional package scope, the project is published
	// as @ScopeName/ProjectName.
	ScopeName string `mapstructure:"scope_name" yaml:"scope_name"`
	// AuthorName is an optional author name.
	AuthorName string `mapstructure:"author_name" yaml:"author_name"`
	// AuthorEmail is an optional author email.
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email"`
	// NodeVersion is an optional node engine version constraint.
	NodeVersion string `mapstructure:"node_version" yaml:"node_version"`
	// NpmVersion is an optional npm engine version constraint.
	NpmVersion string `mapstructure:"npm_version" yaml:"npm_version"`
	// UseHooks enables git hooks bundle.
	UseHooks *bool `mapstructure:"use_hooks" yaml:"use_hooks"`
	// TemplateName is a key in the templates registry.
	TemplateName string `mapstructure:"template" yaml:"template"`
}

// HooksEnabled returns true if git hooks are requested.
func (cfg ProjectConfig) HooksEnabled() bool {
	return cfg.UseHooks != nil && *cfg.UseHooks
}

// HasEngineConstraints returns true if any engine version constraint is set.
func (cfg ProjectConfig) HasEngineConstraints() bool {
	return cfg.NodeVersion != "" || cfg.NpmVersion != ""
}

// Defaults are values offered to a user while prompting.
type Defaults struct {
	ScopeName   string
	AuthorName  string
	AuthorEmail string
	NodeVersion string
	NpmVersion  string
	UseHooks    bool
}

// CreateCtx contains information for creating a project from a template.
type CreateCtx struct {
	ProjectConfig
	// WorkDir is the launch working directory.
	WorkDir string
	// DestinationDir is a directory the project directory is created in.
	// WorkDir is used if it is empty.
	DestinationDir string
	// SilentMode disables user interaction. Missing or invalid values fail
	// project creation.
	SilentMode bool
	// AnswersFile is a YAML file with project description values.
	AnswersFile string
	// Staged enables building the project in a staging directory, which is
	// renamed to the destination after all steps succeed.
	Staged bool
	// Defaults are used as prompt defaults.
	Defaults Defaults
}
