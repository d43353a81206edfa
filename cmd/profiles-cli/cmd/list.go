package cmd

import (
	"github.com/nfrund/househarmony/cmd/profiles-cli/internal/output"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Long: `List every profile known to the service, in the order the service returns them.

Examples:
  profiles-cli list
  profiles-cli list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			profiles, err := opts.client().List(ctx)
			if err != nil {
				return err
			}
			return output.Profiles(cmd.OutOrStdout(), opts.format, profiles)
		},
	}
}
