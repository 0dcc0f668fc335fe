package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/depot/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "depot: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions are the flags shared by every depot command.
type rootOptions struct {
	configPath  string
	catalogPath string
	role        string
	prefsPath   string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "depot",
		Short: "Terminal dashboard for warehouse storage zones",
		Long: `depot shows role dashboards for a warehouse: metric cards, recent
activity and a sortable, searchable list of storage zones.

Run without arguments to start the interactive dashboard. Without --role
(or a role in the config file) depot opens on the dashboard picker.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:  opts.configPath,
				PrefsPath:   opts.prefsPath,
				CatalogPath: opts.catalogPath,
				Role:        opts.role,
				Verbose:     opts.verbose,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/depot/config.toml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "zone catalog TOML file (default: built-in demo catalog)")
	flags.StringVar(&opts.role, "role", "", "dashboard role: admin, moderator, driver or client")
	flags.StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/depot/prefs.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug entries to the log")

	cmd.AddCommand(newZonesCmd(opts))
	return cmd
}
