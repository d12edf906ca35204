package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/snacks/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// snacksHuhTheme returns a custom huh theme using the formatter palette.
func snacksHuhTheme() *huh.Theme {
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

// validateReps accepts a non-negative integer. Empty input, negative values
// and non-numbers are rejected so the form re-prompts instead of coercing.
func validateReps(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("enter a number (0 for a skipped set)")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return fmt.Errorf("reps can't be negative")
	}
	return nil
}

// repsInput returns a huh.Input collecting the rep count for one exercise.
func repsInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0").
		Value(value).
		Validate(validateReps)
}

// repsForm collects one rep count per planned exercise in a single form.
func repsForm(titles []string, values []*string) *huh.Form {
	fields := make([]huh.Field, 0, len(titles))
	for i, title := range titles {
		fields = append(fields, repsInput(title, values[i]))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(snacksHuhTheme()).
		WithShowHelp(false)
}
