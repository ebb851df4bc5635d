package status

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/superlink/internal/cli"
	"github.com/arthur-debert/superlink/pkg/discovery"
	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/style"
	"github.com/arthur-debert/superlink/pkg/types"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.NewEnv()
			if err != nil {
				return err
			}

			categories, err := discovery.Discover(env.FS, env.Paths.SourceRoot(), env.Paths.ClaudeDir())
			if err != nil {
				return err
			}

			switch format {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), style.RenderCategories(categories))
				return nil
			case "yaml":
				return writeYAML(cmd, categories)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}

// artifactDoc is the YAML shape of one artifact in machine-readable output.
type artifactDoc struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Source   string `yaml:"source"`
	Dest     string `yaml:"dest"`
	Status   string `yaml:"status"`
	Detail   string `yaml:"detail,omitempty"`
}

func writeYAML(cmd *cobra.Command, categories []types.Category) error {
	var docs []artifactDoc
	for i := range categories {
		for j := range categories[i].Artifacts {
			art := &categories[i].Artifacts[j]
			docs = append(docs, artifactDoc{
				Name:     art.Name,
				Category: art.Kind.String(),
				Source:   art.SourcePath,
				Dest:     art.DestPath,
				Status:   string(art.Status),
				Detail:   art.ConflictDetail,
			})
		}
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal status")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
