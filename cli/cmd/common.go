package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodekit/scaffold/cli/cmdcontext"
	"github.com/nodekit/scaffold/cli/util"
)

// internalModuleFunc is a function implementing a command.
type internalModuleFunc func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra run function calling the internal module
// and handling its error.
func RunModuleFunc(internalModule internalModuleFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := internalModule(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}
