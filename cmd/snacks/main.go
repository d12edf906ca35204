package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/snacks/internal/catalog"
	"github.com/alexanderramin/snacks/internal/cli"
	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/repository"
	"github.com/alexanderramin/snacks/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.workout-snacks/workout_data.db
	dbPath := os.Getenv("SNACKS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".workout-snacks", "workout_data.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Seed the exercise catalog; idempotent, so safe on every start.
	if err := catalog.Seed(context.Background(), database); err != nil {
		return fmt.Errorf("seeding exercise catalog: %w", err)
	}

	// Wire repositories
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Workouts: service.NewWorkoutService(exerciseRepo, progressRepo, profileRepo, uow),
		Status:   service.NewStatusService(exerciseRepo, progressRepo, sessionRepo),
		Profile:  service.NewProfileService(profileRepo),
	}

	// Detect interactive terminal for the prompt-based flows.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
