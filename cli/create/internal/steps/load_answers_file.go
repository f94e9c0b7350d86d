package steps

import (
	"path/filepath"

	"github.com/apex/log"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/answers"
)

// LoadAnswersFile represents answers file load step.
type LoadAnswersFile struct {
}

// Run fills project description values not passed using command line args
// from the answers file.
func (LoadAnswersFile) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if createCtx.AnswersFile == "" { // Skip if no file specified.
		return nil
	}

	answersPath := createCtx.AnswersFile
	if !filepath.IsAbs(answersPath) && createCtx.WorkDir != "" {
		answersPath = filepath.Join(createCtx.WorkDir, answersPath)
	}

	log.Debugf("Loading answers from %s", answersPath)
	fileAnswers, err := answers.Load(answersPath)
	if err != nil {
		return err
	}
	answers.Merge(&createCtx.ProjectConfig, fileAnswers)

	return nil
}
