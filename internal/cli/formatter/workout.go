package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/snacks/internal/progression"
	"github.com/alexanderramin/snacks/internal/service"
)

// FormatWorkoutPlan renders the planned exercises shown before the user
// starts their set.
func FormatWorkoutPlan(planned []service.PlannedExercise, lastWorkout *time.Time) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("WORKOUT TIME"))
	b.WriteString("\n")
	if lastWorkout != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("Last workout: %s", lastWorkout.Local().Format("2006-01-02 15:04"))))
	} else {
		b.WriteString(StyleDim.Render("Last workout: none yet"))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Today's %d exercises (as many reps as you can with good form):\n\n", len(planned)))

	for i, p := range planned {
		b.WriteString(fmt.Sprintf("%d. %s %s\n",
			i+1,
			StyleBold.Render(p.Exercise.Name),
			StyleDim.Render(fmt.Sprintf("(level %d/%d, %s)", p.Exercise.Level, p.MaxLevel, p.Exercise.Category)),
		))
		if p.Exercise.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", p.Exercise.Description))
		}
		b.WriteString(fmt.Sprintf("   Personal best: %s\n", StyleBlue.Render(fmt.Sprintf("%d reps", p.Progress.MaxReps))))
		if progression.ReadyToAdvance(p.Exercise.Level, progression.AdvanceThreshold, p.MaxLevel) {
			b.WriteString(StyleDim.Render(fmt.Sprintf("   Reach %d reps to level up", progression.AdvanceThreshold)))
			b.WriteString("\n")
		}
		if p.Previous != nil {
			b.WriteString(StyleDim.Render(fmt.Sprintf("   Easier variant: %s (level %d)", p.Previous.Name, p.Previous.Level)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatOutcome renders the feedback line for one recorded exercise.
func FormatOutcome(o service.ProgressionOutcome) string {
	switch {
	case o.Advanced:
		return StyleGreen.Render(fmt.Sprintf("%s: %d reps — level up! Now at level %d.", o.ExerciseName, o.Reps, o.NewLevel))
	case o.NewPersonalBest:
		return StyleYellow.Render(fmt.Sprintf("%s: %d reps — new personal best!", o.ExerciseName, o.Reps))
	default:
		return StyleFg.Render(fmt.Sprintf("%s: %d reps (best: %d)", o.ExerciseName, o.Reps, o.NewMaxReps))
	}
}

// FormatRecorded renders the post-session summary.
func FormatRecorded(recorded *service.RecordedSession) string {
	var b strings.Builder
	for _, o := range recorded.Outcomes {
		b.WriteString(FormatOutcome(o))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleGreen.Render("Workout recorded. Nice work."))
	b.WriteString("\n")
	return b.String()
}
