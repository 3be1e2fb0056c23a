package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/giftshuffler/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <roster.yaml>",
		Short: "Import persons, groups and occasions from a YAML roster",
		Long: `Import a YAML roster into the configured store. Use "-" to read stdin.

Records are matched by name: existing persons, groups and occasions are
reused and missing group members are added. Nothing is written when the
roster references an unknown person.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	var (
		roster *seed.Roster
		err    error
	)
	if path == "-" {
		roster, err = seed.Load(cmd.InOrStdin())
	} else {
		roster, err = seed.LoadFile(path)
	}
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeRoster, "invalid roster", err)
	}

	store, err := openStore(cmd.Context(), opts.cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to initialize storage", err)
	}
	defer store.Close()

	summary, err := seed.Apply(cmd.Context(), store, roster)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeRoster, "import failed", err)
	}

	return out.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "Persons:   %d created, %d reused\n", summary.PersonsCreated, summary.PersonsReused)
		fmt.Fprintf(w, "Groups:    %d created, %d reused, %d members added\n", summary.GroupsCreated, summary.GroupsReused, summary.MembersAdded)
		fmt.Fprintf(w, "Occasions: %d created, %d reused\n", summary.OccasionsCreated, summary.OccasionsReused)
	})
}
