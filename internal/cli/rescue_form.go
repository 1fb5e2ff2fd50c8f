package cli

import (
	"fmt"
	"strings"
	"time"

	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// flowdeckHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func flowdeckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runRescueForm collects the rescue inputs interactively. The factor select
// runs as a second form because its options depend on the chosen category.
func runRescueForm(title string, resolution, deadline, category, factor, severity *string) error {
	categoryOptions := make([]huh.Option[string], 0, len(domain.CauseFactors))
	for _, c := range []domain.RootCauseCategory{
		domain.CauseExternalDependency,
		domain.CauseResourcing,
		domain.CauseScopeChange,
		domain.CauseTechnicalDebt,
		domain.CauseCommunication,
	} {
		categoryOptions = append(categoryOptions, huh.NewOption(causeLabel(string(c)), string(c)))
	}

	severityOptions := make([]huh.Option[string], 0, len(domain.ValidSeverities))
	for _, s := range []domain.Severity{
		domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
	} {
		severityOptions = append(severityOptions, huh.NewOption(string(s), string(s)))
	}

	main := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Proposed resolution for %q", title)).
				Placeholder("Chase the vendor and re-scope the rollout").
				Value(resolution).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("New deadline (YYYY-MM-DD)").
				Placeholder("2026-09-15").
				Value(deadline).
				Validate(validateRequiredDate),
			huh.NewSelect[string]().
				Title("Root cause category").
				Options(categoryOptions...).
				Value(category),
			huh.NewSelect[string]().
				Title("Severity").
				Options(severityOptions...).
				Value(severity),
		),
	).WithTheme(flowdeckHuhTheme()).WithShowHelp(false)

	if err := main.Run(); err != nil {
		return err
	}

	factors := domain.CauseFactors[domain.RootCauseCategory(*category)]
	factorOptions := make([]huh.Option[string], 0, len(factors)+1)
	factorOptions = append(factorOptions, huh.NewOption("(unspecified)", ""))
	for _, f := range factors {
		factorOptions = append(factorOptions, huh.NewOption(causeLabel(f), f))
	}

	followup := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Contributing factor").
				Options(factorOptions...).
				Value(factor),
		),
	).WithTheme(flowdeckHuhTheme()).WithShowHelp(false)

	return followup.Run()
}

// causeLabel makes a snake_case identifier readable in a form.
func causeLabel(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// validateNonEmpty rejects blank input.
func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateRequiredDate accepts only a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
