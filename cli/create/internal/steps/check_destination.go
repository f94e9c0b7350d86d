package steps

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

// CheckDestination represents project directory check step.
type CheckDestination struct {
}

// Run computes the project directory path and checks it does not exist.
func (CheckDestination) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	parentDir := createCtx.WorkDir
	if createCtx.DestinationDir != "" {
		parentDir = createCtx.DestinationDir
	}

	appDirectory, err := filepath.Abs(filepath.Join(parentDir, createCtx.ProjectName))
	if err != nil {
		return err
	}

	if _, err = templateCtx.Fs.Stat(appDirectory); err == nil {
		return fmt.Errorf("Folder %q already exists.", createCtx.ProjectName)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", appDirectory, err)
	}

	templateCtx.TargetAppPath = appDirectory
	templateCtx.AppPath = appDirectory
	return nil
}
