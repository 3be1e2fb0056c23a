// Package cli implements the giftshuffler command line.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mmynk/giftshuffler/internal/config"
	"github.com/mmynk/giftshuffler/pkg/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Store and DBPath override GIFTSHUFFLER_STORE and GIFTSHUFFLER_DB_PATH.
	Store  string
	DBPath string

	cfg config.Config
}

// NewRootCommand creates the root command for the giftshuffler CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "giftshuffler",
		Short: "Secret gift exchange organizer",
		Long: `giftshuffler keeps groups of people and the occasions they exchange gifts on,
and draws a giver-to-recipient assignment for every edition of an occasion.
Nobody gives to themselves and nobody repeats a pairing from an earlier
edition of the same group and occasion.

Configuration is read from GIFTSHUFFLER_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.loadConfig(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "storage backend (sqlite|memory)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database path")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewEditionsCommand(opts))
	cmd.AddCommand(NewShuffleCommand(opts))

	return cmd
}

// loadConfig reads the environment, applies flag overrides and sets up the
// default logger on stderr.
func (o *RootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return &ExitError{Code: ExitCommandError, Message: "invalid configuration", Err: err}
	}
	if o.Store != "" {
		cfg.Store = o.Store
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCommandError, Message: "invalid configuration", Err: err}
	}

	logging.Configure(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	slog.Debug("Configuration loaded", "store", cfg.Store, "db_path", cfg.DBPath)

	o.cfg = cfg
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
