package steps

import (
	"github.com/spf13/afero"

	"github.com/nodekit/scaffold/cli/create/builtin_templates"
)

// State is a project creation state.
type State int

const (
	// Idle is a state before any step is run.
	Idle State = iota
	// Validating is a state of steps collecting and checking input. The file
	// system is not modified in this state.
	Validating
	// Scaffolding is a state of steps creating the project.
	Scaffolding
	// Success is a final state of successful project creation.
	Success
	// Failed is a final state of a failed project creation.
	Failed
)

func (state State) String() string {
	switch state {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Scaffolding:
		return "scaffolding"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// TemplateCtx contains an information required for project template instantiation.
type TemplateCtx struct {
	// State is a current creation state.
	State State
	// Template is a resolved project template.
	Template builtin_templates.Template
	// TemplateFs is a file system containing templates.
	TemplateFs afero.Fs
	// Fs is a file system the project is created in.
	Fs afero.Fs
	// AppPath is a path to the directory the template is instantiated in. It is
	// a staging directory in staged mode and TargetAppPath otherwise.
	AppPath string
	// TargetAppPath is a final project directory path.
	TargetAppPath string
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	return TemplateCtx{
		State:      Idle,
		TemplateFs: builtin_templates.Fs(),
		Fs:         afero.NewOsFs(),
	}
}

// IsStaging returns true if the project is built in a staging directory.
func (templateCtx *TemplateCtx) IsStaging() bool {
	return templateCtx.AppPath != "" && templateCtx.AppPath != templateCtx.TargetAppPath
}
