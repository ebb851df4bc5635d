package cli

import (
	"strings"

	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/types"
)

// Select sets the desired selection on the named artifacts. Names match
// either the bare artifact name or the qualified "category/name" form; with
// no names, every artifact is selected (or deselected). Artifacts not named
// keep the selection discovery gave them, so they reconcile as no-ops.
func Select(categories []types.Category, names []string, selected bool) error {
	if len(names) == 0 {
		for ci := range categories {
			for ai := range categories[ci].Artifacts {
				categories[ci].Artifacts[ai].Selected = selected
			}
		}
		return nil
	}

	matched := make(map[string]bool, len(names))
	for ci := range categories {
		for ai := range categories[ci].Artifacts {
			art := &categories[ci].Artifacts[ai]
			for _, name := range names {
				if art.Name == name || art.Ref() == name {
					art.Selected = selected
					matched[name] = true
				}
			}
		}
	}

	var missing []string
	for _, name := range names {
		if !matched[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrArtifactNotFound,
			"no such artifact: %s", strings.Join(missing, ", "))
	}

	return nil
}
