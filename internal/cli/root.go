package cli

import (
	"github.com/alexanderramin/snacks/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workouts service.WorkoutService
	Status   service.StatusService
	Profile  service.ProfileService

	// IsInteractive reports whether stdin is a terminal; non-interactive
	// invocations must pass reps and setup choices as flags.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "snacks" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "snacks",
		Short: "Micro-workout tracker with automatic progression",
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newProgressCmd(app),
		newSetupCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
