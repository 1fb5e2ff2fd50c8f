package cli

import (
	"time"

	"flowdeck/internal/lifecycle"
	"flowdeck/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	WorkItems  service.WorkItemService
	Completion service.CompletionService
	Ranking    service.RankingService
	Escalation service.EscalationService
	Rescue     service.RescueService

	// Scanner backs "scan --watch", which owns the midnight scheduler
	// directly rather than going through the escalation service.
	Scanner *lifecycle.Scanner

	// Loc is the zone "today" is computed in. It must match the zone the
	// ranking service and the scheduler were wired with, or the ledger
	// and the presenter disagree on the calendar day.
	Loc *time.Location

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive surfaces (the rescue form, the today checklist) are
	// gated on it.
	IsInteractive func() bool
}

func (a *App) location() *time.Location {
	if a.Loc != nil {
		return a.Loc
	}
	return time.Local
}

// NewRootCmd creates the top-level "flowdeck" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "flowdeck",
		Short: "Task lifecycle and priority scheduling for small teams",
	}

	root.AddCommand(
		newWorkCmd(app),
		newRankCmd(app),
		newScanCmd(app),
		newRescueCmd(app),
		newToggleCmd(app),
		newTodayCmd(app),
	)

	return root
}
