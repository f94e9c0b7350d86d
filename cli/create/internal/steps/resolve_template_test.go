package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	create_ctx "github.com/nodekit/scaffold/cli/create/context"
)

func TestResolveTemplate(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := NewTemplateContext()

	createCtx.TemplateName = "node-cli"
	require.NoError(t, ResolveTemplate{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, "node-cli", templateCtx.Template.Name)
	assert.Equal(t, "index.js", templateCtx.Template.EntryPoint)
}

func TestResolveTemplateNotFound(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := NewTemplateContext()

	createCtx.TemplateName = "react-app"
	require.EqualError(t, ResolveTemplate{}.Run(&createCtx, &templateCtx),
		`Template "react-app" not found.`)

	// Hooks bundle is not a project template.
	createCtx.TemplateName = "husky"
	require.EqualError(t, ResolveTemplate{}.Run(&createCtx, &templateCtx),
		`Template "husky" not found.`)
}
