package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/snacks/internal/service"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderLadder renders a ladder position like [███░░░░░░░] 3/13.
func RenderLadder(level, maxLevel, width int) string {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if level > maxLevel {
		level = maxLevel
	}
	if width < 2 {
		width = 2
	}

	filled := level * width / maxLevel
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	pct := float64(level) / float64(maxLevel)
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), level, maxLevel)
}

// FormatStatus renders the full progress report.
func FormatStatus(report *service.StatusReport) string {
	return formatStatusAt(report, time.Now())
}

func formatStatusAt(report *service.StatusReport, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("WORKOUT PROGRESS"))
	b.WriteString("\n\nCurrent level in each category:\n\n")

	for _, cs := range report.Categories {
		b.WriteString(fmt.Sprintf("%-10s %s\n",
			strings.ToUpper(string(cs.Category)),
			RenderLadder(cs.CurrentLevel, cs.MaxLevel, 10),
		))
		b.WriteString(fmt.Sprintf("           %s %s\n",
			StyleBold.Render(cs.ExerciseName),
			StyleDim.Render(fmt.Sprintf("— best %d reps", cs.MaxReps)),
		))
	}

	b.WriteString(fmt.Sprintf("\nWorkouts in last %d days:\n", report.RecentDays))
	counts := make(map[string]int, len(report.Daily))
	for _, d := range report.Daily {
		counts[d.Day] = d.Count
	}
	for i := 0; i < report.RecentDays; i++ {
		day := now.AddDate(0, 0, -i)
		count := counts[day.Format("2006-01-02")]
		line := fmt.Sprintf("  %s: %d", day.Format("Mon 01-02"), count)
		if count == 0 {
			b.WriteString(StyleDim.Render(line))
		} else {
			b.WriteString(StyleFg.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nTotal last %d days: %d\n", report.RecentDays, report.TotalRecent))
	b.WriteString(fmt.Sprintf("Total all time: %d\n", report.TotalAllTime))

	if report.LastWorkout != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("Last workout: %s", report.LastWorkout.Local().Format("2006-01-02 15:04"))))
		b.WriteString("\n")
	}

	return b.String()
}
