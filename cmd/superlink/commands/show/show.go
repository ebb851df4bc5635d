package show

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/superlink/internal/cli"
	"github.com/arthur-debert/superlink/pkg/discovery"
	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/types"
	"github.com/arthur-debert/superlink/pkg/ui/markdown"
)

// NewCommand creates the show command
func NewCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "show <artifact>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.NewEnv()
			if err != nil {
				return err
			}

			categories, err := discovery.Discover(env.FS, env.Paths.SourceRoot(), env.Paths.ClaudeDir())
			if err != nil {
				return err
			}

			art := find(categories, args[0])
			if art == nil {
				return errors.Newf(errors.ErrArtifactNotFound, "no such artifact: %s", args[0])
			}

			// Skills link whole directories; their document is the marker file.
			docPath := art.SourcePath
			if art.Kind.IsDirectory() {
				docPath = filepath.Join(art.SourcePath, types.SkillMarkerFile)
			}

			content, err := env.FS.ReadFile(docPath)
			if err != nil {
				return errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", docPath)
			}

			renderer := markdown.NewRenderer(width)
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(string(content)))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Wrap output at this column (0 = terminal width)")

	return cmd
}

func find(categories []types.Category, name string) *types.Artifact {
	for ci := range categories {
		for ai := range categories[ci].Artifacts {
			art := &categories[ci].Artifacts[ai]
			if art.Name == name || art.Ref() == name {
				return art
			}
		}
	}
	return nil
}
