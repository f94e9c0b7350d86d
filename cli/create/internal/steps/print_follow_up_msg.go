package steps

import (
	"fmt"
	"io"
	"strings"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/manifest"
	"github.com/nodekit/scaffold/cli/util"
)

type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints project creation result and commands to start working with it.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "%s\n",
		util.Success(fmt.Sprintf("Project %q is created in %s", createCtx.ProjectName,
			templateCtx.TargetAppPath)))
	msg.WriteString("\nNext steps:\n")
	commands := []string{"cd " + createCtx.ProjectName}
	if createCtx.HooksEnabled() {
		// Hooks are installed by the postinstall script in a git repository.
		commands = append(commands, "git init")
	}
	commands = append(commands, manifest.PackageManager+" install")
	for _, command := range commands {
		fmt.Fprintf(&msg, "  %s\n", util.Bold(command))
	}

	_, err := io.WriteString(printFollowUpMsgStep.Writer, msg.String())
	return err
}
