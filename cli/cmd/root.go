package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/nodekit/scaffold/cli/cmdcontext"
	"github.com/nodekit/scaffold/cli/config"
	"github.com/nodekit/scaffold/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Node.js project scaffolding tool",
		Long:  "Utility for creating Node.js projects from built-in templates",
		Example: `$ scaffold create node-cli --name my-tool
  $ scaffold templates
  $ scaffold completion bash`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewCreateCmd(),
		NewTemplatesCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

// InitRoot initializes global flags, locates and loads the configuration file.
func InitRoot() {
	rootCmd = NewCmdRoot()
	// Subcommand flags are parsed later by the subcommand itself.
	rootCmd.FParseErrWhitelist.UnknownFlags = true
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure scaffold: %s", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get scaffold configuration: %s", err)
	}
}
