package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/lifecycle"
	"github.com/spf13/cobra"
)

func newScanCmd(a *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Convert overdue items into roadblocks",
		Long: `Scan runs one escalation pass: every active item whose due date has
passed becomes a roadblock. With --watch it stays in the foreground and
re-runs the pass at every local midnight until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return runWatch(a)
			}

			resp, err := a.Escalation.TriggerScan(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatScan(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and scan at every local midnight")

	return cmd
}

func runWatch(a *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sched := lifecycle.NewScheduler(a.Scanner, time.Local, logger)

	fmt.Println(formatter.Dim("Watching. Next scan at local midnight; Ctrl-C to stop."))

	if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
