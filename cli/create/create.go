package create

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/spf13/afero"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/steps"
	"github.com/nodekit/scaffold/cli/util"
	"github.com/nodekit/scaffold/cli/version"
)

// Runner creates a project from a template.
type Runner struct {
	// TemplateFs is a file system with templates. Built-in templates are used
	// if it is nil.
	TemplateFs afero.Fs
	// Fs is a file system the project is created in. OS file system is used
	// if it is nil.
	Fs afero.Fs
	// Prompter asks a user for missing values. Terminal prompter is used if
	// it is nil.
	Prompter steps.Prompter
	// Out receives the follow-up message. Stdout is used if it is nil.
	Out io.Writer
}

// FillCtx fills create context from command line arguments.
func FillCtx(createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) > 1 {
		return util.NewArgError("Only one template name is expected.")
	}
	if len(args) == 1 {
		createCtx.TemplateName = args[0]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	return nil
}

// rollbackOnErr removes the staging directory. Nothing is removed if the
// project is created in place.
func rollbackOnErr(templateCtx *steps.TemplateCtx) {
	if !templateCtx.IsStaging() {
		return
	}
	log.Debugf("Removing staging directory %s", templateCtx.AppPath)
	if err := templateCtx.Fs.RemoveAll(templateCtx.AppPath); err != nil {
		log.Warnf("Failed to remove staging directory: %s", err)
	}
	templateCtx.AppPath = ""
}

// runSteps runs stepsChain in state. The context is moved to the Failed state
// on error.
func runSteps(createCtx *create_ctx.CreateCtx, templateCtx *steps.TemplateCtx,
	state steps.State, stepsChain []steps.Step) error {
	log.Debugf("Project creation state: %s", state)
	templateCtx.State = state
	for _, step := range stepsChain {
		if err := step.Run(createCtx, templateCtx); err != nil {
			templateCtx.State = steps.Failed
			return err
		}
	}
	return nil
}

// Run creates a project from a template.
func (runner Runner) Run(createCtx *create_ctx.CreateCtx) (steps.State, error) {
	templateCtx := steps.NewTemplateContext()
	if runner.TemplateFs != nil {
		templateCtx.TemplateFs = runner.TemplateFs
	}
	if runner.Fs != nil {
		templateCtx.Fs = runner.Fs
	}
	prompter := runner.Prompter
	if prompter == nil {
		prompter = steps.NewConsolePrompter()
	}
	out := runner.Out
	if out == nil {
		out = os.Stdout
	}

	validationChain := []steps.Step{
		steps.LoadAnswersFile{},
		steps.CollectConfig{Prompter: prompter},
		steps.ResolveTemplate{},
		steps.CheckDestination{},
	}
	if err := runSteps(createCtx, &templateCtx, steps.Validating, validationChain); err != nil {
		return templateCtx.State, err
	}

	scaffoldingChain := []steps.Step{
		steps.CreateStagingDirectory{},
		steps.CopyAppTemplate{},
		steps.InjectHooks{},
		steps.ComposeManifest{},
		steps.MoveAppDirectory{},
	}
	if err := runSteps(createCtx, &templateCtx, steps.Scaffolding, scaffoldingChain); err != nil {
		rollbackOnErr(&templateCtx)
		return templateCtx.State, err
	}
	templateCtx.State = steps.Success

	if err := (steps.PrintFollowUpMessage{Writer: out}).Run(createCtx, &templateCtx); err != nil {
		log.Warnf("Failed to print follow-up message: %s", err)
	}

	return templateCtx.State, nil
}

// Run creates a project from a built-in template in the OS file system.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}
	_, err := Runner{}.Run(createCtx)
	return err
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.WorkDir == "" {
		return fmt.Errorf("working directory is not set")
	}
	return nil
}
