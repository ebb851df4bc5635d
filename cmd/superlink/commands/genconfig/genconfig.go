package genconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/superlink/pkg/config"
	"github.com/arthur-debert/superlink/pkg/paths"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout {
				data, err := config.Generate()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := paths.ConfigFilePath()
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the config to stdout instead of writing the file")

	return cmd
}
