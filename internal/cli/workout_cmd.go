package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/snacks/internal/cli/formatter"
	"github.com/alexanderramin/snacks/internal/service"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	var repsFlag string
	var duration int

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Start a workout session and record your reps",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			planned, err := app.Workouts.PlanSession(ctx)
			if err != nil {
				if errors.Is(err, service.ErrNoExercises) {
					return fmt.Errorf("%w — run 'snacks setup' to configure your equipment", err)
				}
				return err
			}

			report, err := app.Status.GetStatus(ctx, 5)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorkoutPlan(planned, report.LastWorkout))

			var results []service.ExerciseResult
			if repsFlag != "" {
				results, err = resultsFromFlag(planned, repsFlag)
			} else {
				if !app.interactive() {
					return fmt.Errorf("stdin is not a terminal; pass rep counts with --reps (comma-separated, one per exercise)")
				}
				results, err = promptForReps(planned)
			}
			if err != nil {
				return err
			}

			recorded, err := app.Workouts.RecordSession(ctx, results, duration)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRecorded(recorded))
			return nil
		},
	}

	cmd.Flags().StringVar(&repsFlag, "reps", "", "Comma-separated rep counts, one per planned exercise (skips prompting)")
	cmd.Flags().IntVar(&duration, "duration", 3, "Session duration in minutes")

	return cmd
}

// promptForReps collects one validated rep count per exercise via a huh form.
func promptForReps(planned []service.PlannedExercise) ([]service.ExerciseResult, error) {
	titles := make([]string, len(planned))
	values := make([]*string, len(planned))
	for i, p := range planned {
		titles[i] = fmt.Sprintf("%s — how many reps?", p.Exercise.Name)
		values[i] = new(string)
	}

	if err := repsForm(titles, values).Run(); err != nil {
		return nil, fmt.Errorf("collecting reps: %w", err)
	}

	results := make([]service.ExerciseResult, len(planned))
	for i, p := range planned {
		// The form validator guarantees a non-negative integer.
		reps, err := strconv.Atoi(strings.TrimSpace(*values[i]))
		if err != nil {
			return nil, fmt.Errorf("parsing reps for %s: %w", p.Exercise.Name, err)
		}
		results[i] = service.ExerciseResult{Exercise: p.Exercise, Reps: reps}
	}
	return results, nil
}

// resultsFromFlag parses --reps into results, enforcing one count per
// planned exercise.
func resultsFromFlag(planned []service.PlannedExercise, flag string) ([]service.ExerciseResult, error) {
	parts := strings.Split(flag, ",")
	if len(parts) != len(planned) {
		return nil, fmt.Errorf("--reps has %d values but the session has %d exercises", len(parts), len(planned))
	}

	results := make([]service.ExerciseResult, len(planned))
	for i, part := range parts {
		reps, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid rep count %q", part)
		}
		if reps < 0 {
			return nil, fmt.Errorf("rep count %d is negative", reps)
		}
		results[i] = service.ExerciseResult{Exercise: planned[i].Exercise, Reps: reps}
	}
	return results, nil
}
