package cli

import (
	"context"
	"fmt"
	"time"

	"flowdeck/internal/app"
	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newRescueCmd(a *App) *cobra.Command {
	var (
		resolution string
		deadline   string
		category   string
		factor     string
		severity   string
	)

	cmd := &cobra.Command{
		Use:   "rescue ID",
		Short: "Resolve a roadblock by spawning a follow-up task",
		Long: `Rescue closes a roadblock: it records the root cause, marks the item
resolved, and creates a follow-up task carrying the proposed resolution
and the new deadline. Run without flags on a terminal to fill the form
interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if resolution == "" && a.IsInteractive != nil && a.IsInteractive() {
				item, err := a.WorkItems.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				if err := runRescueForm(item.Title, &resolution, &deadline, &category, &factor, &severity); err != nil {
					return err
				}
			}

			due, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				return fmt.Errorf("parsing --deadline: %w", err)
			}
			// A same-day deadline means end of that day.
			due = due.Add(24*time.Hour - time.Second)

			req := app.RescueRequest{
				WorkItemID:         args[0],
				ProposedResolution: resolution,
				NewDeadline:        due,
				Category:           domain.RootCauseCategory(category),
				Factor:             factor,
				Severity:           domain.Severity(severity),
			}

			created, err := a.Rescue.Rescue(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("Roadblock resolved. Follow-up %s %s due %s\n",
				formatter.Bold(created.Title),
				formatter.TruncID(created.ID),
				created.DueDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&resolution, "resolution", "", "Proposed resolution for the follow-up task")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "Root cause category")
	cmd.Flags().StringVar(&factor, "factor", "", "Root cause factor within the category")
	cmd.Flags().StringVar(&severity, "severity", "medium", "Root cause severity")

	return cmd
}
