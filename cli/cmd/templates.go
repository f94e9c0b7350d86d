package cmd

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/nodekit/scaffold/cli/cmdcontext"
	"github.com/nodekit/scaffold/cli/create/builtin_templates"
)

var prettyTemplates bool

// NewTemplatesCmd creates a new templates command.
func NewTemplatesCmd() *cobra.Command {
	var templatesCmd = &cobra.Command{
		Use:   "templates",
		Short: "Show built-in project templates",
		Run:   RunModuleFunc(internalTemplatesModule),
		Args:  cobra.NoArgs,
	}

	templatesCmd.Flags().BoolVar(&prettyTemplates, "pretty", false,
		"Print templates as a table with borders")

	return templatesCmd
}

// printTemplates writes template names and descriptions as a table.
func printTemplates(w io.Writer, pretty bool) {
	ts := table.NewWriter()
	ts.SetOutputMirror(w)
	ts.AppendHeader(table.Row{"TEMPLATE", "DESCRIPTION"})
	for _, template := range builtin_templates.Templates() {
		ts.AppendRow(table.Row{template.Name, template.Description})
	}

	if pretty {
		ts.SetStyle(table.StyleRounded)
	} else {
		ts.Style().Options.DrawBorder = false
		ts.Style().Options.SeparateColumns = false
		ts.Style().Options.SeparateHeader = false
	}
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()
}

// internalTemplatesModule is a default (internal) templates module function.
func internalTemplatesModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	printTemplates(os.Stdout, prettyTemplates)
	return nil
}
