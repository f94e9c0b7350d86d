package config

// Config used to store all information from the
// scaffold.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"scaffold" yaml:"scaffold"`
}

// scaffold.yaml file format:
// scaffold:
//   defaults:
//     scope: name
//     author_name: name
//     author_email: email
//     node_version: constraint
//     npm_version: constraint
//     hooks: bool
//   create:
//     staged: bool

// DefaultsOpts contains values offered to a user while prompting for
// a project description.
type DefaultsOpts struct {
	// Scope is a default package scope.
	Scope string `mapstructure:"scope" yaml:"scope"`
	// AuthorName is a default author name.
	AuthorName string `mapstructure:"author_name" yaml:"author_name"`
	// AuthorEmail is a default author email.
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email"`
	// NodeVersion is a default node engine constraint.
	NodeVersion string `mapstructure:"node_version" yaml:"node_version"`
	// NpmVersion is a default npm engine constraint.
	NpmVersion string `mapstructure:"npm_version" yaml:"npm_version"`
	// Hooks is a default answer for git hooks setup.
	Hooks *bool `mapstructure:"hooks" yaml:"hooks"`
}

// CreateOpts contains project creation options.
type CreateOpts struct {
	// Staged makes project to be built in a staging directory and moved to
	// the destination only after all steps succeed.
	Staged bool `mapstructure:"staged" yaml:"staged"`
}

// CliOpts is used to store the CLI configuration.
type CliOpts struct {
	// Defaults are prompt defaults.
	Defaults *DefaultsOpts `mapstructure:"defaults" yaml:"defaults"`
	// Create contains project creation options.
	Create *CreateOpts `mapstructure:"create" yaml:"create"`
}
