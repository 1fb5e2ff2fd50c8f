package cli

import (
	"context"
	"fmt"
	"time"

	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newToggleCmd(a *App) *cobra.Command {
	var (
		userID string
		date   string
		off    bool
	)

	cmd := &cobra.Command{
		Use:   "toggle ID",
		Short: "Mark an item handled (or not) for one day",
		Long: `Toggle flips the daily completion mark for an item. The mark hides the
item from today's lists without changing its permanent status; a new day
starts with every mark cleared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().In(a.location()).Format(domain.MarkDateLayout)
			}

			mark, err := a.Completion.Toggle(context.Background(), userID, args[0], date, !off)
			if err != nil {
				return err
			}

			state := formatter.StyleGreen.Render("done")
			if !mark.Completed {
				state = formatter.Dim("not done")
			}
			fmt.Printf("%s %s for %s on %s\n", formatter.TruncID(mark.WorkItemID), state, mark.UserID, mark.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the mark belongs to")
	cmd.Flags().StringVar(&date, "date", "", "Calendar day (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&off, "off", false, "Clear the mark instead of setting it")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
