package steps

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/afero"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/replicate"
)

// CreateStagingDirectory represents staging directory creation step.
type CreateStagingDirectory struct {
}

// Run creates a staging directory next to the project directory. The
// template is instantiated there and the directory is renamed in the end.
func (CreateStagingDirectory) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !createCtx.Staged {
		return nil
	}
	if templateCtx.TargetAppPath == "" {
		return fmt.Errorf("project directory is not set")
	}

	parentDir := filepath.Dir(templateCtx.TargetAppPath)
	if err := templateCtx.Fs.MkdirAll(parentDir, replicate.DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create %s: %w", parentDir, err)
	}

	stagingDir, err := afero.TempDir(templateCtx.Fs, parentDir,
		"."+createCtx.ProjectName+"-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	templateCtx.AppPath = stagingDir

	if err = templateCtx.Fs.Chmod(stagingDir, replicate.DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %w", stagingDir, err)
	}

	log.Debugf("Using staging directory %s", stagingDir)
	return nil
}
