package cli

import (
	"fmt"
	"time"

	"flowdeck/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App) *cobra.Command {
	var (
		userID string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Interactive daily checklist",
		Long: `Today opens a checklist over your active items for one calendar day.
Toggling a row flips the daily completion mark only; item statuses are
untouched and every mark clears at the next day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive != nil && !a.IsInteractive() {
				return fmt.Errorf("today needs an interactive terminal")
			}
			if date == "" {
				date = time.Now().In(a.location()).Format(domain.MarkDateLayout)
			}

			p := tea.NewProgram(newTodayModel(a, userID, date))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose checklist to open")
	cmd.Flags().StringVar(&date, "date", "", "Calendar day (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
