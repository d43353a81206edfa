package cmd

import (
	"github.com/nfrund/househarmony/cmd/profiles-cli/internal/output"
	"github.com/spf13/cobra"
)

func newIconsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "Show the icons a profile can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Icons(cmd.OutOrStdout(), opts.format)
		},
	}
}
