package formatter

import (
	"fmt"
	"strings"
	"time"

	"flowdeck/internal/app"
)

// FormatRanking formats a RankingResponse into a styled CLI dashboard string.
func FormatRanking(resp *app.RankingResponse) string {
	var b strings.Builder

	now := resp.GeneratedAt

	b.WriteString(Header(fmt.Sprintf("Top Priorities (%d active)", resp.Counts.TotalActive)))
	b.WriteString("\n\n")

	if len(resp.TopPriority) == 0 {
		b.WriteString(Dim("Nothing to do. Enjoy it while it lasts."))
		b.WriteString("\n")
	} else {
		for i, item := range resp.TopPriority {
			b.WriteString(rankedLine(i+1, item, now))
		}
	}

	if resp.DoneToday > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d item(s) already handled today", resp.DoneToday)))
		b.WriteString("\n")
	}

	if resp.Counts.QuickWins > 0 {
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("Quick Wins (%d)", resp.Counts.QuickWins)))
		b.WriteString("\n\n")
		for _, item := range resp.QuickWins {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				StyleGreen.Render("▸"),
				StyleFg.Render(item.Title),
				Dim(FormatMinutes(item.EstimatedMin))))
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Time Slots"))
	b.WriteString("\n\n")
	b.WriteString(slotSection("Morning", resp.TimeSlots.Morning, resp.Counts.Morning))
	b.WriteString(slotSection("Afternoon", resp.TimeSlots.Afternoon, resp.Counts.Afternoon))
	b.WriteString(slotSection("Evening", resp.TimeSlots.Evening, resp.Counts.Evening))
	if resp.Counts.Flexible > 0 {
		b.WriteString(Dim(fmt.Sprintf("  %d flexible item(s) fit anywhere", resp.Counts.Flexible)))
		b.WriteString("\n")
	}

	return b.String()
}

func rankedLine(num int, item app.RankedItem, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
		Bold(fmt.Sprintf("%d.", num)),
		StyleFg.Render(item.Title),
		StyleBlue.Render(FormatScore(item.Score)),
		QuadrantBadge(item.Quadrant)))

	meta := []string{string(item.Kind), string(item.Priority)}
	b.WriteString(fmt.Sprintf("   %s", Dim(strings.Join(meta, " · "))))
	if item.DueDate != nil {
		b.WriteString(fmt.Sprintf("  %s %s", Dim("due"), RelativeDateStyled(*item.DueDate, now)))
	}
	b.WriteString(fmt.Sprintf("  %s\n", TruncID(item.WorkItemID)))

	return b.String()
}

func slotSection(label string, items []app.RankedItem, total int) string {
	if total == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s\n", StylePurple.Render(label), Dim(fmt.Sprintf("(%d)", total))))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("    %s  %s\n", StyleFg.Render(item.Title), StyleBlue.Render(FormatScore(item.Score))))
	}
	return b.String()
}
