package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/giftshuffler/internal/edition"
)

type assignmentView struct {
	GiverID     string `json:"giver_id"`
	Giver       string `json:"giver"`
	RecipientID string `json:"recipient_id"`
	Recipient   string `json:"recipient"`
}

type shuffleView struct {
	EditionID   string           `json:"edition_id"`
	Edition     string           `json:"edition"`
	Attempts    int              `json:"attempts"`
	Assignments []assignmentView `json:"assignments"`
}

// NewShuffleCommand creates the shuffle command.
func NewShuffleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shuffle <edition-id>",
		Short: "Draw and commit the assignments of an edition",
		Long: `Shuffle an edition: every current member of its group gives to exactly one
other member, avoiding every pairing recorded by earlier editions of the same
group and occasion. An edition can only be shuffled once.

Exits with 1 when the edition is already shuffled, has fewer than two
participants or no valid assignment exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShuffle(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShuffle(opts *RootOptions, editionID string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	ctx := cmd.Context()

	store, err := openStore(ctx, opts.cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to initialize storage", err)
	}
	defer store.Close()

	res, err := newShuffler(opts.cfg, store).Run(ctx, editionID)
	if err != nil {
		kind := edition.KindOf(err)
		code := ExitFailure
		if kind == edition.KindNotFound || kind == edition.KindBackendUnavailable {
			code = ExitCommandError
		}
		return out.Fail(code, string(kind), "shuffle failed", err)
	}

	ed, err := store.GetEdition(ctx, editionID)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to reload edition", err)
	}
	assignments, err := store.ListAssignments(ctx, editionID)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to list assignments", err)
	}

	view := shuffleView{
		EditionID:   ed.ID,
		Edition:     ed.Name,
		Attempts:    res.Attempts,
		Assignments: make([]assignmentView, len(assignments)),
	}
	for i, a := range assignments {
		view.Assignments[i] = assignmentView{
			GiverID:     a.GiverID,
			Giver:       a.GiverName,
			RecipientID: a.RecipientID,
			Recipient:   a.RecipientName,
		}
	}

	return out.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s (%d attempts)\n", view.Edition, view.Attempts)
		for _, a := range view.Assignments {
			fmt.Fprintf(w, "  %s → %s\n", a.Giver, a.Recipient)
		}
	})
}
