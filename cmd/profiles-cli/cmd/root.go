package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/nfrund/househarmony/cmd/profiles-cli/internal/output"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/spf13/cobra"
)

// cliEnv is the part of the environment the CLI reads.
type cliEnv struct {
	APIURL string `env:"PROFILES_API_URL" envDefault:"http://localhost:8080"`
}

// options are the persistent flags shared by every command.
type options struct {
	apiURL  string
	format  string
	timeout time.Duration
}

func (o *options) client() *profileapi.Client {
	return profileapi.NewClient(o.apiURL)
}

// context returns the context a single API call runs under. A zero timeout
// means no deadline.
func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.timeout)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var e cliEnv
	if err := env.Parse(&e); err != nil {
		e.APIURL = profileapi.DefaultBaseURL
	}

	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "profiles-cli",
		Short: "Manage House Harmony profiles",
		Long: `profiles-cli talks to the profiles service over its REST API.

Available commands:
  list      List all profiles
  create    Create a profile
  update    Rename a profile or change its icon
  delete    Delete a profile
  icons     Show the icons a profile can use

Use "profiles-cli [command] --help" for more information about a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return output.CheckFormat(opts.format)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", e.APIURL, "Base URL of the profiles service (env PROFILES_API_URL)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", output.FormatTable, "Output format (table, json)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Deadline for each request, 0 for none")

	rootCmd.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newIconsCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
