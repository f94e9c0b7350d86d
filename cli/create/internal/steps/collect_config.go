package steps

import (
	"fmt"

	"github.com/apex/log"

	"github.com/nodekit/scaffold/cli/create/builtin_templates"
	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/validate"
)

// Prompter asks a user for project description values.
type Prompter interface {
	// Input asks for a text value. validate is called for every entered
	// value, the user is asked again until it returns nil.
	Input(label, defaultValue string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string, defaultValue bool) (bool, error)
	// Select asks to choose one of items.
	Select(label string, items []string) (string, error)
}

// CollectConfig represents project description collecting step.
type CollectConfig struct {
	// Prompter is used to get user input.
	Prompter Prompter
}

// textField is a text value of the project description.
type textField struct {
	label        string
	value        *string
	defaultValue string
	check        func(string) error
}

// Run asks a user for project description values which are not set or invalid.
// In silent mode defaults are used for missing optional values and invalid
// values are reported as errors.
func (step CollectConfig) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	cfg := &createCtx.ProjectConfig
	defaults := createCtx.Defaults

	fields := []textField{
		{"Project name", &cfg.ProjectName, "", validate.ProjectName},
		{"Project scope name (optional)", &cfg.ScopeName, defaults.ScopeName,
			validate.ScopeName},
		{"Author email (optional)", &cfg.AuthorEmail, defaults.AuthorEmail, nil},
		{"Author name (optional)", &cfg.AuthorName, defaults.AuthorName, nil},
		{"Node version (optional)", &cfg.NodeVersion, defaults.NodeVersion,
			validate.VersionConstraint},
		{"NPM version (optional)", &cfg.NpmVersion, defaults.NpmVersion,
			validate.VersionConstraint},
	}
	for _, field := range fields {
		if err := step.collectText(createCtx.SilentMode, field); err != nil {
			return err
		}
	}

	if cfg.UseHooks == nil {
		useHooks := defaults.UseHooks
		if !createCtx.SilentMode {
			var err error
			if useHooks, err = step.Prompter.Confirm("Setup Husky", useHooks); err != nil {
				return err
			}
		}
		cfg.UseHooks = &useHooks
	}

	if cfg.TemplateName == "" {
		if createCtx.SilentMode {
			cfg.TemplateName = builtin_templates.DefaultTemplate
			log.Debugf("Using %q template", cfg.TemplateName)
		} else {
			templateName, err := step.Prompter.Select("Choose a project template",
				builtin_templates.Names())
			if err != nil {
				return err
			}
			cfg.TemplateName = templateName
		}
	}

	return nil
}

// collectText sets the field value. A value passed by a user is kept if it
// is valid.
func (step CollectConfig) collectText(silentMode bool, field textField) error {
	check := field.check
	if check == nil {
		check = func(string) error { return nil }
	}

	if *field.value != "" {
		err := check(*field.value)
		if err == nil {
			return nil
		}
		if silentMode {
			return fmt.Errorf("%w: %q", err, *field.value)
		}
		log.Warnf("%s: %q", err, *field.value)
	} else if silentMode {
		if err := check(field.defaultValue); err != nil {
			return err
		}
		*field.value = field.defaultValue
		return nil
	}

	input, err := step.Prompter.Input(field.label, field.defaultValue, check)
	if err != nil {
		return err
	}
	*field.value = input
	return nil
}
