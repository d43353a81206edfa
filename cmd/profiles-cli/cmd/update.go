package cmd

import (
	"fmt"
	"strconv"

	"github.com/nfrund/househarmony/cmd/profiles-cli/internal/output"
	"github.com/nfrund/househarmony/internal/domain"
	"github.com/spf13/cobra"
)

func newUpdateCmd(opts *options) *cobra.Command {
	var name, icon string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a profile or change its icon",
		Long: `Update a profile. The service replaces both fields, so unset flags keep
the profile's current value.

Examples:
  profiles-cli update 3 --name "Ana María"
  profiles-cli update 3 --icon /placeholder.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("icon") {
				return fmt.Errorf("nothing to update, pass --name or --icon")
			}
			if cmd.Flags().Changed("icon") && !domain.IsValidIcon(icon) {
				return describeInvalid(domain.ErrInvalidIcon)
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()
			client := opts.client()

			current, err := findProfile(ctx, client, id)
			if err != nil {
				return err
			}
			patch := current.Draft()
			if cmd.Flags().Changed("name") {
				patch.Name = name
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = icon
			}

			p, err := client.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			return output.Profile(cmd.OutOrStdout(), opts.format, p)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New profile name")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New icon src, see 'profiles-cli icons'")
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid profile id %q", arg)
	}
	return id, nil
}
