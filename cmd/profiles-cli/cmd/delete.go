package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile",
		Long: `Delete a profile. This cannot be undone, so the command asks for
confirmation unless --yes is given.

Examples:
  profiles-cli delete 3
  profiles-cli delete 3 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()
			client := opts.client()

			if !yes {
				p, err := findProfile(ctx, client, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Delete profile %d (%s)? This cannot be undone. [y/N]: ", p.ID, p.Name)
				if !confirmed(cmd) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := client.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func confirmed(cmd *cobra.Command) bool {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// findProfile looks a profile up in the full list; the service has no
// single-profile endpoint.
func findProfile(ctx context.Context, client *profileapi.Client, id int64) (domain.Profile, error) {
	profiles, err := client.List(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Profile{}, fmt.Errorf("profile %d: %w", id, domain.ErrNotFound)
}
