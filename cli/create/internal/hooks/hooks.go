// Package hooks installs the optional git hooks bundle into a project.
package hooks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/afero"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/create/internal/replicate"
)

const (
	// DirName is a hooks directory in a project.
	DirName = ".husky"
	// PreCommit is a hook script patched after copying.
	PreCommit = "pre-commit"
	// Marker is a placeholder line in the PreCommit script.
	Marker = "<node-checks>"
	// NodeChecksScript is a helper script checking engine versions.
	NodeChecksScript = "node-checks.sh"
)

// NodeChecksInclude is a line sourcing NodeChecksScript from PreCommit.
var NodeChecksInclude = fmt.Sprintf(`. "$(dirname "$0")/%s"`, NodeChecksScript)

// Patch replaces the first marker line of content with line. The marker line
// is removed if line is empty. Content without a marker line is returned
// unchanged.
func Patch(content, marker, line string) string {
	replacement := "\n"
	if line != "" {
		replacement = "\n" + line + "\n"
	}
	return strings.Replace(content, "\n"+marker+"\n", replacement, 1)
}

// Injector copies the hooks bundle.
type Injector struct {
	replicate.Replicator
}

// Inject copies bundleDir into the project hooks directory and activates
// engine checks in the pre-commit hook if any engine constraint is set.
func (injector Injector) Inject(bundleDir, projectDir string,
	cfg create_ctx.ProjectConfig) error {
	hooksDir := filepath.Join(projectDir, DirName)
	if err := injector.Replicate(bundleDir, hooksDir); err != nil {
		return fmt.Errorf("failed to copy hooks: %w", err)
	}

	preCommitPath := filepath.Join(hooksDir, PreCommit)
	info, err := injector.Dst.Stat(preCommitPath)
	if err != nil {
		return fmt.Errorf("failed to access %s hook: %w", PreCommit, err)
	}
	content, err := afero.ReadFile(injector.Dst, preCommitPath)
	if err != nil {
		return fmt.Errorf("failed to read %s hook: %w", PreCommit, err)
	}

	include := ""
	if cfg.HasEngineConstraints() {
		include = NodeChecksInclude
		log.Debugf("Enabling engine checks in %s", preCommitPath)
	}

	patched := Patch(string(content), Marker, include)
	if err = afero.WriteFile(injector.Dst, preCommitPath, []byte(patched),
		info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s hook: %w", PreCommit, err)
	}

	return nil
}
