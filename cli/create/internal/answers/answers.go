// Package answers loads project description values from a YAML file.
package answers

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
	"github.com/nodekit/scaffold/cli/util"
)

// Load loads answers from answersPath. Unknown keys are reported as errors.
func Load(answersPath string) (create_ctx.ProjectConfig, error) {
	var cfg create_ctx.ProjectConfig
	if _, err := os.Stat(answersPath); err != nil {
		return cfg, fmt.Errorf("failed to get access to answers file: %s", err)
	}

	raw, err := util.ParseYAML(answersPath)
	if err != nil {
		return cfg, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode answers file: %s", err)
	}

	return cfg, nil
}

// Merge sets empty fields of dst to the values from src.
func Merge(dst *create_ctx.ProjectConfig, src create_ctx.ProjectConfig) {
	fill := func(value *string, answer string) {
		if *value == "" {
			*value = answer
		}
	}
	fill(&dst.ProjectName, src.ProjectName)
	fill(&dst.ScopeName, src.ScopeName)
	fill(&dst.AuthorName, src.AuthorName)
	fill(&dst.AuthorEmail, src.AuthorEmail)
	fill(&dst.NodeVersion, src.NodeVersion)
	fill(&dst.NpmVersion, src.NpmVersion)
	fill(&dst.TemplateName, src.TemplateName)
	if dst.UseHooks == nil && src.UseHooks != nil {
		useHooks := *src.UseHooks
		dst.UseHooks = &useHooks
	}
}
