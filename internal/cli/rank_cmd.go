package cli

import (
	"context"
	"fmt"
	"time"

	"flowdeck/internal/app"
	"flowdeck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRankCmd(a *App) *cobra.Command {
	var (
		userID      string
		topN        int
		quickWinMax int
		slotCap     int
		nowOverride string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show the prioritized view of your active items",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.RankingRequest{
				UserID:      userID,
				TopN:        topN,
				QuickWinMax: quickWinMax,
				SlotCap:     slotCap,
			}

			if nowOverride != "" {
				t, err := time.Parse(time.RFC3339, nowOverride)
				if err != nil {
					return fmt.Errorf("parsing --now: %w", err)
				}
				req.Now = &t
			}

			resp, err := a.Ranking.Rank(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatRanking(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose items to rank")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of top priorities to show")
	cmd.Flags().IntVar(&quickWinMax, "quick-wins", 0, "Number of quick wins to show")
	cmd.Flags().IntVar(&slotCap, "slot-cap", 0, "Items to show per time slot")
	cmd.Flags().StringVar(&nowOverride, "now", "", "Override the clock (RFC 3339, for reproducible output)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
