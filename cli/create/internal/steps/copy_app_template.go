package steps

import (
	"fmt"

	"github.com/apex/log"

	"github.com/nodekit/scaffold/cli/create/builtin_templates"
	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/replicate"
)

// CopyAppTemplate represents template copy step.
type CopyAppTemplate struct {
}

// Run copies the template to the project directory.
func (CopyAppTemplate) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	log.Infof("Scaffolding project %q...", templateCtx.Template.Name)

	replicator := replicate.Replicator{
		Src:      templateCtx.TemplateFs,
		Dst:      templateCtx.Fs,
		FileMode: builtin_templates.FileMode(templateCtx.Template.Dir),
	}
	if err := replicator.Replicate(templateCtx.Template.Path(), templateCtx.AppPath); err != nil {
		return fmt.Errorf("template copying failed: %w", err)
	}

	return nil
}
