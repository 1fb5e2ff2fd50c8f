package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newWorkAddCmd(a),
		newWorkShowCmd(a),
		newWorkListCmd(a),
		newWorkDoneCmd(a),
		newWorkRemoveCmd(a),
	)

	return cmd
}

func newWorkAddCmd(a *App) *cobra.Command {
	var (
		title, description, kind, priority string
		due, parentID                      string
		estimatedMin                       int
		participants                       []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &domain.WorkItem{
				Title:          title,
				Description:    description,
				Kind:           domain.Kind(kind),
				Priority:       domain.Priority(priority),
				EstimatedMin:   estimatedMin,
				Participants:   participants,
				LinkedParentID: parentID,
			}

			if due != "" {
				t, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				end := t.Add(24*time.Hour - time.Second)
				w.DueDate = &end
			}

			if err := a.WorkItems.Create(context.Background(), w); err != nil {
				return err
			}

			fmt.Printf("Created %s %s\n", formatter.Bold(w.Title), formatter.TruncID(w.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Work item title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&kind, "kind", "task", "Kind (task, quick_win, roadblock)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, end of day)")
	cmd.Flags().StringVar(&parentID, "parent", "", "Owning dossier ID")
	cmd.Flags().IntVar(&estimatedMin, "estimate", 0, "Estimated effort in minutes")
	cmd.Flags().StringSliceVar(&participants, "participants", nil, "Participant user IDs, creator first")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

func newWorkShowCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show work item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.WorkItems.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder

			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(w.Title), formatter.KindBadge(w.Kind)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("STATUS  "), formatter.StatusPill(w.Status)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ID      "), formatter.TruncID(w.ID)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PRIORITY"), formatter.PriorityBadge(w.Priority)))

			if w.DueDate != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("DUE     "), formatter.RelativeDateStyled(*w.DueDate, time.Now())))
			}
			if w.EstimatedMin > 0 {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ESTIMATE"), formatter.FormatMinutes(w.EstimatedMin)))
			}
			if w.LinkedParentID != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT  "), formatter.TruncID(w.LinkedParentID)))
			}

			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PEOPLE  "), strings.Join(w.Participants, ", ")))
			for user, kind := range w.ParticipantKind {
				b.WriteString(fmt.Sprintf("  %s  %s sees %s\n", formatter.Dim("        "), user, formatter.KindBadge(kind)))
			}

			if w.EscalatedAt != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ESCALATED"), w.EscalatedAt.Format("2006-01-02 15:04")))
			}
			if w.RootCause != nil {
				cause := string(w.RootCause.Category)
				if w.RootCause.Factor != "" {
					cause += " / " + w.RootCause.Factor
				}
				b.WriteString(fmt.Sprintf("  %s  %s (%s)\n", formatter.Dim("CAUSE   "), cause, w.RootCause.Severity))
			}

			if w.Description != "" {
				b.WriteString("\n" + w.Description + "\n")
			}

			fmt.Print(b.String())
			return nil
		},
	}

	return cmd
}

func newWorkListCmd(a *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active work items for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.WorkItems.ListActive(context.Background(), userID)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println(formatter.Dim("No active items."))
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, w := range items {
				due := formatter.Dim("--")
				if w.DueDate != nil {
					due = formatter.RelativeDateStyled(*w.DueDate, time.Now())
				}
				rows = append(rows, []string{
					formatter.TruncID(w.ID),
					w.Title,
					formatter.KindBadge(w.EffectiveKind(userID)),
					formatter.PriorityBadge(w.Priority),
					due,
				})
			}

			fmt.Println(formatter.RenderTable([]string{"ID", "TITLE", "KIND", "PRIORITY", "DUE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose items to list")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newWorkDoneCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a work item completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.WorkItems.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Completed %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}

	return cmd
}

func newWorkRemoveCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.WorkItems.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}

	return cmd
}
