package steps

import (
	"path/filepath"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/manifest"
)

// ComposeManifest represents package manifest update step.
type ComposeManifest struct {
}

// Run writes project description values to the copied package manifest.
func (ComposeManifest) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	manifestPath := filepath.Join(templateCtx.AppPath, manifest.FileName)
	base, err := manifest.Load(templateCtx.Fs, manifestPath)
	if err != nil {
		return err
	}

	composed, err := manifest.Compose(base, createCtx.ProjectConfig, manifest.Options{
		EntryPoint: templateCtx.Template.EntryPoint,
	})
	if err != nil {
		return err
	}

	return manifest.Write(templateCtx.Fs, manifestPath, composed)
}
