package steps

import (
	"fmt"

	"github.com/nodekit/scaffold/cli/create/builtin_templates"
	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

// ResolveTemplate represents template lookup step.
type ResolveTemplate struct {
}

// Run finds the selected template in the registry.
func (ResolveTemplate) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	template, found := builtin_templates.Lookup(createCtx.TemplateName)
	if !found {
		return fmt.Errorf("Template %q not found.", createCtx.TemplateName)
	}
	templateCtx.Template = template
	return nil
}
