package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/househarmony/cmd/profiles-cli/internal/output"
	"github.com/nfrund/househarmony/internal/domain"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *options) *cobra.Command {
	draft := domain.NewDraft()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Long: `Create a profile with a name and one of the available icons.

Examples:
  profiles-cli create --name Ana
  profiles-cli create --name Luis --icon https://github.com/shadcn.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := draft.Validate(); err != nil {
				return describeInvalid(err)
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			p, err := opts.client().Create(ctx, draft)
			if err != nil {
				return err
			}
			return output.Profile(cmd.OutOrStdout(), opts.format, p)
		},
	}

	cmd.Flags().StringVarP(&draft.Name, "name", "n", "", "Profile name (required)")
	cmd.Flags().StringVarP(&draft.Icon, "icon", "i", domain.DefaultIcon, "Icon src, see 'profiles-cli icons'")
	return cmd
}

// describeInvalid turns draft validation errors into user-facing messages.
func describeInvalid(err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return fmt.Errorf("a name is required: %w", err)
	case errors.Is(err, domain.ErrInvalidIcon):
		return fmt.Errorf("unknown icon, run 'profiles-cli icons' for the options: %w", err)
	default:
		return err
	}
}
