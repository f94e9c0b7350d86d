package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodekit/scaffold/cli/cmdcontext"
	"github.com/nodekit/scaffold/cli/config"
	"github.com/nodekit/scaffold/cli/create"
	"github.com/nodekit/scaffold/cli/create/builtin_templates"
	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/util"
)

var (
	projectName        string
	scopeName          string
	authorName         string
	authorEmail        string
	nodeVersion        string
	npmVersion         string
	useHooks           bool
	dstPath            string
	answersFile        string
	nonInteractiveMode bool
	stagedMode         bool

	// useHooksSet is true if --hooks option was provided.
	useHooksSet bool
	// stagedModeSet is true if --staged option was provided.
	stagedModeSet bool
)

// NewCreateCmd creates a project from a template.
func NewCreateCmd() *cobra.Command {
	var createCmd = &cobra.Command{
		Use:   "create [TEMPLATE_NAME] [flags]",
		Short: "Create a project from a template",
		Run: func(cmd *cobra.Command, args []string) {
			useHooksSet = cmd.Flags().Changed("hooks")
			stagedModeSet = cmd.Flags().Changed("staged")
			RunModuleFunc(internalCreateModule)(cmd, args)
		},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: createValidArgsFunction,
		Long: `Create a project from a template.
Values which are not passed with options are asked interactively.

Built-in templates:
` + templatesHelp(),
		Example: `
# Create a project asking for all values.

    $ scaffold create

# Create my-tool project from node-cli template without git hooks.

    $ scaffold create node-cli --name my-tool --hooks=false

# Create @acme/my-tool project in /opt/projects. User interaction is disabled.

    $ scaffold create node-cli -n my-tool --scope acme -s --dst /opt/projects

# Create a project using values from a file.

    $ scaffold create --answers-file answers.yaml --non-interactive`,
	}

	createCmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	createCmd.Flags().StringVar(&scopeName, "scope", "", "Project scope name")
	createCmd.Flags().StringVar(&authorName, "author-name", "", "Author name")
	createCmd.Flags().StringVar(&authorEmail, "author-email", "", "Author email")
	createCmd.Flags().StringVar(&nodeVersion, "node-version", "",
		"Node engine version constraint")
	createCmd.Flags().StringVar(&npmVersion, "npm-version", "",
		"NPM engine version constraint")
	createCmd.Flags().BoolVar(&useHooks, "hooks", true, "Set up git hooks")
	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where a project will be created")
	createCmd.Flags().StringVar(&answersFile, "answers-file", "",
		"YAML file with project description values")
	createCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")
	createCmd.Flags().BoolVar(&stagedMode, "staged", false,
		"Build the project in a staging directory and move it on success")

	return createCmd
}

// templatesHelp returns built-in templates description for the command help.
func templatesHelp() string {
	var help strings.Builder
	for _, template := range builtin_templates.Templates() {
		help.WriteString("\t" + template.Name + ": " + template.Description + "\n")
	}
	return strings.TrimSuffix(help.String(), "\n")
}

// createValidArgsFunction returns valid templates for `create` command.
func createValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return builtin_templates.Names(), cobra.ShellCompDirectiveNoFileComp
}

// newCreateCtx makes create context from command line options and CLI
// configuration.
func newCreateCtx(opts *config.CliOpts, interactive bool) create_ctx.CreateCtx {
	createCtx := create_ctx.CreateCtx{
		ProjectConfig: create_ctx.ProjectConfig{
			ProjectName: projectName,
			ScopeName:   scopeName,
			AuthorName:  authorName,
			AuthorEmail: authorEmail,
			NodeVersion: nodeVersion,
			NpmVersion:  npmVersion,
		},
		DestinationDir: dstPath,
		AnswersFile:    answersFile,
		SilentMode:     nonInteractiveMode || !interactive,
		Staged:         stagedMode,
		Defaults:       create_ctx.Defaults{UseHooks: true},
	}
	if useHooksSet {
		hooks := useHooks
		createCtx.UseHooks = &hooks
	}

	if opts == nil {
		return createCtx
	}
	if opts.Defaults != nil {
		createCtx.Defaults = create_ctx.Defaults{
			ScopeName:   opts.Defaults.Scope,
			AuthorName:  opts.Defaults.AuthorName,
			AuthorEmail: opts.Defaults.AuthorEmail,
			NodeVersion: opts.Defaults.NodeVersion,
			NpmVersion:  opts.Defaults.NpmVersion,
			UseHooks:    opts.Defaults.Hooks == nil || *opts.Defaults.Hooks,
		}
	}
	if opts.Create != nil && !stagedModeSet {
		createCtx.Staged = opts.Create.Staged
	}
	return createCtx
}

// internalCreateModule is a default create module.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	createCtx := newCreateCtx(cliOpts, util.IsInteractive(os.Stdin))
	if err := create.FillCtx(&createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
