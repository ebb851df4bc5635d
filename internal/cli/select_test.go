package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/types"
)

func fixture() []types.Category {
	return []types.Category{
		{
			Kind: types.KindCommands,
			Artifacts: []types.Artifact{
				{Name: "brainstorm", Kind: types.KindCommands},
				{Name: "review", Kind: types.KindCommands},
			},
		},
		{
			Kind: types.KindAgents,
			Artifacts: []types.Artifact{
				{Name: "review", Kind: types.KindAgents},
			},
		},
	}
}

func TestSelect_All(t *testing.T) {
	categories := fixture()
	require.NoError(t, Select(categories, nil, true))
	for _, cat := range categories {
		for _, art := range cat.Artifacts {
			assert.True(t, art.Selected)
		}
	}
}

func TestSelect_DeselectAll(t *testing.T) {
	categories := fixture()
	require.NoError(t, Select(categories, nil, true))
	require.NoError(t, Select(categories, nil, false))
	for _, cat := range categories {
		for _, art := range cat.Artifacts {
			assert.False(t, art.Selected)
		}
	}
}

func TestSelect_BareName(t *testing.T) {
	categories := fixture()
	require.NoError(t, Select(categories, []string{"brainstorm"}, true))
	assert.True(t, categories[0].Artifacts[0].Selected)
	assert.False(t, categories[0].Artifacts[1].Selected)
	assert.False(t, categories[1].Artifacts[0].Selected)
}

func TestSelect_BareNameMatchesAcrossKinds(t *testing.T) {
	categories := fixture()
	require.NoError(t, Select(categories, []string{"review"}, true))
	assert.True(t, categories[0].Artifacts[1].Selected)
	assert.True(t, categories[1].Artifacts[0].Selected)
}

func TestSelect_QualifiedRef(t *testing.T) {
	categories := fixture()
	require.NoError(t, Select(categories, []string{"agents/review"}, true))
	assert.False(t, categories[0].Artifacts[1].Selected)
	assert.True(t, categories[1].Artifacts[0].Selected)
}

func TestSelect_UnknownName(t *testing.T) {
	categories := fixture()
	err := Select(categories, []string{"brainstorm", "nope"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArtifactNotFound))
	assert.Contains(t, err.Error(), "nope")
	// The matched name still took effect.
	assert.True(t, categories[0].Artifacts[0].Selected)
}
