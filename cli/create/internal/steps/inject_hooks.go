package steps

import (
	"github.com/apex/log"

	"github.com/nodekit/scaffold/cli/create/builtin_templates"
	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/hooks"
	"github.com/nodekit/scaffold/cli/create/internal/replicate"
)

// InjectHooks represents git hooks bundle injection step.
type InjectHooks struct {
}

// Run copies git hooks bundle to the project if hooks are requested.
func (InjectHooks) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !createCtx.HooksEnabled() {
		log.Debug("Git hooks are not requested. Skipping hooks injection.")
		return nil
	}

	injector := hooks.Injector{
		Replicator: replicate.Replicator{
			Src:      templateCtx.TemplateFs,
			Dst:      templateCtx.Fs,
			FileMode: builtin_templates.FileMode(builtin_templates.HooksBundle),
		},
	}
	return injector.Inject(builtin_templates.HooksBundlePath(), templateCtx.AppPath,
		createCtx.ProjectConfig)
}
