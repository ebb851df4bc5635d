package style

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/superlink/pkg/types"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestRenderCategories_Empty(t *testing.T) {
	out := RenderCategories(nil)
	assert.Contains(t, out, "No installable artifacts")
}

func TestRenderCategories_Counts(t *testing.T) {
	categories := []types.Category{{
		Kind: types.KindCommands,
		Artifacts: []types.Artifact{
			{Name: "brainstorm", Status: types.StatusInstalled},
			{Name: "review", Status: types.StatusNotInstalled},
		},
	}}

	out := RenderCategories(categories)
	assert.Contains(t, out, "commands")
	assert.Contains(t, out, "(1/2 installed)")
	assert.Contains(t, out, InstalledIndicator+" brainstorm")
	assert.Contains(t, out, NotInstalledIndicator+" review")
}

func TestRenderCategories_ConflictDetail(t *testing.T) {
	categories := []types.Category{{
		Kind: types.KindSkills,
		Artifacts: []types.Artifact{{
			Name:           "debugging",
			Status:         types.StatusConflict,
			ConflictDetail: "path exists but is not a symlink: /x",
		}},
	}}

	out := RenderCategories(categories)
	assert.Contains(t, out, ConflictIndicator+" debugging")
	assert.Contains(t, out, "not a symlink")
}

func TestRenderResults_Empty(t *testing.T) {
	assert.Contains(t, RenderResults(nil), "No operations performed")
}

func TestRenderResults_Grouped(t *testing.T) {
	results := []types.OperationResult{
		{
			Artifact: types.Artifact{Name: "a", Kind: types.KindCommands},
			Action:   types.ActionInstall,
			Success:  true,
		},
		{
			Artifact: types.Artifact{Name: "b", Kind: types.KindAgents},
			Action:   types.ActionUninstall,
			Success:  false,
			Message:  "not a symlink: /x",
		},
	}

	out := RenderResults(results)
	assert.Contains(t, out, "Success (1)")
	assert.Contains(t, out, "install: commands/a")
	assert.Contains(t, out, "Errors (1)")
	assert.Contains(t, out, "uninstall: agents/b - not a symlink: /x")
}

func TestStatusIndicator(t *testing.T) {
	assert.Equal(t, InstalledIndicator, StatusIndicator(types.StatusInstalled))
	assert.Equal(t, ConflictIndicator, StatusIndicator(types.StatusConflict))
	assert.Equal(t, NotInstalledIndicator, StatusIndicator(types.StatusNotInstalled))
}

func TestRenderError(t *testing.T) {
	out := RenderError(assert.AnError)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, assert.AnError.Error())
}
