package steps

import (
	"fmt"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/spf13/afero"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

// MoveAppDirectory represents staging directory move step.
type MoveAppDirectory struct {
}

// Run moves staging directory to the project directory.
func (MoveAppDirectory) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !templateCtx.IsStaging() {
		return nil
	}

	if _, err := templateCtx.Fs.Stat(templateCtx.TargetAppPath); err == nil {
		return fmt.Errorf("Folder %q already exists.", createCtx.ProjectName)
	}

	err := templateCtx.Fs.Rename(templateCtx.AppPath, templateCtx.TargetAppPath)
	if err != nil {
		if _, isOsFs := templateCtx.Fs.(*afero.OsFs); !isOsFs {
			return fmt.Errorf("failed to move %s to %s: %w", templateCtx.AppPath,
				templateCtx.TargetAppPath, err)
		}
		log.Debugf("Rename failed: %s. Copying staging directory.", err)
		if err = copy.Copy(templateCtx.AppPath, templateCtx.TargetAppPath); err != nil {
			return err
		}
		if err = templateCtx.Fs.RemoveAll(templateCtx.AppPath); err != nil {
			log.Warnf("Failed to remove staging directory: %s", err)
		}
	}

	templateCtx.AppPath = templateCtx.TargetAppPath
	return nil
}
