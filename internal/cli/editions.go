package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/giftshuffler/internal/models"
)

type editionView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Group      string `json:"group"`
	Occasion   string `json:"occasion"`
	Number     int    `json:"number"`
	IsShuffled bool   `json:"is_shuffled"`
	CreatedAt  int64  `json:"created_at"`
}

// NewEditionsCommand creates the editions command.
func NewEditionsCommand(rootOpts *RootOptions) *cobra.Command {
	var filter models.EditionFilter

	cmd := &cobra.Command{
		Use:   "editions",
		Short: "List editions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditions(rootOpts, filter, cmd)
		},
	}

	cmd.Flags().StringVar(&filter.GroupID, "group", "", "only editions of this group ID")
	cmd.Flags().StringVar(&filter.OccasionID, "occasion", "", "only editions of this occasion ID")

	return cmd
}

func runEditions(opts *RootOptions, filter models.EditionFilter, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	store, err := openStore(cmd.Context(), opts.cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to initialize storage", err)
	}
	defer store.Close()

	editions, err := store.ListEditions(cmd.Context(), filter)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to list editions", err)
	}

	views := make([]editionView, len(editions))
	for i, e := range editions {
		views[i] = editionView{
			ID:         e.ID,
			Name:       e.Name,
			Group:      e.GroupName,
			Occasion:   e.OccasionName,
			Number:     e.Number,
			IsShuffled: e.IsShuffled,
			CreatedAt:  e.CreatedAt,
		}
	}

	return out.Success(views, func(w io.Writer) {
		if len(views) == 0 {
			fmt.Fprintln(w, "No editions")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSHUFFLED\tCREATED")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", v.ID, v.Name, v.IsShuffled,
				time.Unix(v.CreatedAt, 0).Format(time.DateTime))
		}
		tw.Flush()
	})
}
