package formatter

import (
	"fmt"
	"sort"
	"strings"

	"flowdeck/internal/app"
)

// FormatScan formats a ScanResponse into a styled summary string.
func FormatScan(resp *app.ScanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Escalation Scan"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("SCANNED"), StyleFg.Render(resp.ScannedAt.Format("2006-01-02 15:04:05"))))

	converted := fmt.Sprintf("%d", resp.Converted)
	if resp.Converted > 0 {
		converted = StyleRed.Render(converted)
	} else {
		converted = StyleGreen.Render(converted)
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ESCALATED"), converted))

	if resp.Failed > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("FAILED "), StyleYellow.Render(fmt.Sprintf("%d", resp.Failed))))
	}

	if len(resp.UsersAffected) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Affected Users"))
		b.WriteString("\n\n")

		users := make([]string, 0, len(resp.UsersAffected))
		for u := range resp.UsersAffected {
			users = append(users, u)
		}
		sort.Strings(users)

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{StyleFg.Render(u), fmt.Sprintf("%d", resp.UsersAffected[u])})
		}
		b.WriteString(RenderTable([]string{"USER", "ROADBLOCKS"}, rows))
	}

	return b.String()
}
