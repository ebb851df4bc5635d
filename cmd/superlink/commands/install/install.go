package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/superlink/internal/cli"
	"github.com/arthur-debert/superlink/pkg/discovery"
	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/reconcile"
	"github.com/arthur-debert/superlink/pkg/style"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "install [artifact...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.NewEnv()
			if err != nil {
				return err
			}

			categories, err := discovery.Discover(env.FS, env.Paths.SourceRoot(), env.Paths.ClaudeDir())
			if err != nil {
				return err
			}

			if err := cli.Select(categories, args, true); err != nil {
				return err
			}

			results := reconcile.Reconcile(env.FS, categories)
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderResults(results))

			failed := 0
			for _, r := range results {
				if !r.Success {
					failed++
				}
			}
			if failed > 0 {
				return errors.Newf(errors.ErrSymlinkCreate, "%d operation(s) failed", failed)
			}
			return nil
		},
	}
}
