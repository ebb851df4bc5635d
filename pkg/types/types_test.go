package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds_Order(t *testing.T) {
	kinds := Kinds()
	assert.Equal(t, []CategoryKind{KindCommands, KindSkills, KindAgents}, kinds)
}

func TestCategoryKind_IsDirectory(t *testing.T) {
	assert.False(t, KindCommands.IsDirectory())
	assert.True(t, KindSkills.IsDirectory())
	assert.False(t, KindAgents.IsDirectory())
}

func TestArtifact_Ref(t *testing.T) {
	art := Artifact{Name: "brainstorm", Kind: KindCommands}
	assert.Equal(t, "commands/brainstorm", art.Ref())
}

func TestCategory_AllInstalled(t *testing.T) {
	cat := Category{
		Kind: KindCommands,
		Artifacts: []Artifact{
			{Name: "a", Status: StatusInstalled},
			{Name: "b", Status: StatusInstalled},
		},
	}
	assert.True(t, cat.AllInstalled())

	cat.Artifacts[1].Status = StatusNotInstalled
	assert.False(t, cat.AllInstalled())

	cat.Artifacts[1].Status = StatusConflict
	assert.False(t, cat.AllInstalled())
}

func TestCategory_AllSelected(t *testing.T) {
	cat := Category{
		Kind: KindAgents,
		Artifacts: []Artifact{
			{Name: "a", Selected: true},
			{Name: "b", Selected: false},
		},
	}
	assert.False(t, cat.AllSelected())

	cat.Artifacts[1].Selected = true
	assert.True(t, cat.AllSelected())
}

func TestCategory_AllInstalled_Empty(t *testing.T) {
	cat := Category{Kind: KindSkills}
	assert.True(t, cat.AllInstalled())
	assert.True(t, cat.AllSelected())
}
