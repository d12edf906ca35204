package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/repository"
	"github.com/alexanderramin/snacks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutService(t *testing.T) (WorkoutService, *sql.DB) {
	t.Helper()
	database := testutil.NewSeededTestDB(t)
	svc := NewWorkoutService(
		repository.NewSQLiteExerciseRepo(database),
		repository.NewSQLiteProgressRepo(database),
		repository.NewSQLiteProfileRepo(database),
		testutil.NewTestUoW(database),
	)
	return svc, database
}

func TestPlanSession_BodyweightDefaults(t *testing.T) {
	svc, _ := newWorkoutService(t)
	ctx := context.Background()

	planned, err := svc.PlanSession(ctx)
	require.NoError(t, err)
	require.Len(t, planned, 4, "default profile plans 4 slots")

	seen := make(map[domain.Category]bool)
	for _, p := range planned {
		assert.False(t, seen[p.Exercise.Category], "category %s repeated", p.Exercise.Category)
		seen[p.Exercise.Category] = true
		assert.True(t, p.Exercise.Performable(nil))
		assert.Equal(t, 1, p.Progress.Level, "untrained categories start at level 1")
		assert.Greater(t, p.MaxLevel, 0)
		assert.Nil(t, p.Previous, "level 1 has no easier rung")
	}
	assert.False(t, seen[domain.CategoryPullups], "pullups need a bar")
}

func TestPlanSession_EquipmentWidensSelection(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	profiles := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profiles.Upsert(ctx, &domain.UserProfile{
		ID:          "default",
		Equipment:   domain.NewEquipmentSet(domain.EquipmentPullupBar),
		SessionSize: 8,
	}))

	planned, err := svc.PlanSession(ctx)
	require.NoError(t, err)
	require.Len(t, planned, 8, "all eight categories reachable with a bar")

	seen := make(map[domain.Category]bool)
	for _, p := range planned {
		seen[p.Exercise.Category] = true
	}
	assert.True(t, seen[domain.CategoryPullups])
}

func TestPlanSession_PreviousRungShown(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	progress := repository.NewSQLiteProgressRepo(database)
	for _, c := range domain.Categories {
		require.NoError(t, progress.Upsert(ctx, &domain.CategoryProgress{Category: c, Level: 3, MaxReps: 5}))
	}

	planned, err := svc.PlanSession(ctx)
	require.NoError(t, err)
	for _, p := range planned {
		assert.Equal(t, 3, p.Exercise.Level)
		require.NotNil(t, p.Previous, "%s at level 3 has an easier rung", p.Exercise.Category)
		assert.Less(t, p.Previous.Level, p.Exercise.Level)
	}
}

func TestPlanSession_ErrNoExercisesOnEmptyCatalog(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	_, err := database.ExecContext(ctx, `DELETE FROM exercises`)
	require.NoError(t, err)

	_, err = svc.PlanSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExercises)
}

func TestRecordSession_PersistsSessionAndExercises(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	results := []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryPushups, Name: "Wall Push-ups", Level: 1}, Reps: 12},
		{Exercise: domain.Exercise{Category: domain.CategorySquats, Name: "Chair Squats", Level: 1}, Reps: 0},
	}

	recorded, err := svc.RecordSession(ctx, results, 3)
	require.NoError(t, err)
	require.NotNil(t, recorded.Session)
	require.Len(t, recorded.Outcomes, 2)

	sessions := repository.NewSQLiteSessionRepo(database)
	got, err := sessions.GetByID(ctx, recorded.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.DurationMinutes)

	exercises, err := sessions.ListExercises(ctx, recorded.Session.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Wall Push-ups", exercises[0].ExerciseName)
	assert.Equal(t, 12, exercises[0].Reps)
}

func TestRecordSession_AdvancesAtThreshold(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	progress := repository.NewSQLiteProgressRepo(database)
	require.NoError(t, progress.Upsert(ctx, &domain.CategoryProgress{
		Category: domain.CategoryPushups, Level: 3, MaxReps: 10,
	}))

	recorded, err := svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryPushups, Name: "Knee Push-ups", Level: 3}, Reps: 15},
	}, 3)
	require.NoError(t, err)

	outcome := recorded.Outcomes[0]
	assert.True(t, outcome.Advanced)
	assert.Equal(t, 4, outcome.NewLevel)
	assert.Equal(t, 0, outcome.NewMaxReps)

	stored, err := progress.Get(ctx, domain.CategoryPushups)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Level)
	assert.Equal(t, 0, stored.MaxReps)
}

func TestRecordSession_BelowThresholdRatchetsReps(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	progress := repository.NewSQLiteProgressRepo(database)
	require.NoError(t, progress.Upsert(ctx, &domain.CategoryProgress{
		Category: domain.CategoryPushups, Level: 3, MaxReps: 10,
	}))

	recorded, err := svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryPushups, Name: "Knee Push-ups", Level: 3}, Reps: 12},
	}, 3)
	require.NoError(t, err)

	outcome := recorded.Outcomes[0]
	assert.False(t, outcome.Advanced)
	assert.True(t, outcome.NewPersonalBest)
	assert.Equal(t, 3, outcome.NewLevel)
	assert.Equal(t, 12, outcome.NewMaxReps)

	stored, err := progress.Get(ctx, domain.CategoryPushups)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Level)
	assert.Equal(t, 12, stored.MaxReps)
}

func TestRecordSession_CeilingPinsLevel(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	progress := repository.NewSQLiteProgressRepo(database)
	require.NoError(t, progress.Upsert(ctx, &domain.CategoryProgress{
		Category: domain.CategoryPushups, Level: 13, MaxReps: 20,
	}))

	recorded, err := svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryPushups, Name: "Planche Push-ups", Level: 13}, Reps: 30},
	}, 3)
	require.NoError(t, err)

	outcome := recorded.Outcomes[0]
	assert.False(t, outcome.Advanced)
	assert.Equal(t, 13, outcome.NewLevel)
	assert.Equal(t, 30, outcome.NewMaxReps)
}

func TestRecordSession_FirstSessionCreatesProgressRow(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	progress := repository.NewSQLiteProgressRepo(database)
	_, err := progress.Get(ctx, domain.CategorySquats)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategorySquats, Name: "Chair Squats", Level: 1}, Reps: 8},
	}, 3)
	require.NoError(t, err)

	stored, err := progress.Get(ctx, domain.CategorySquats)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Level)
	assert.Equal(t, 8, stored.MaxReps)
}

func TestRecordSession_RejectsNegativeReps(t *testing.T) {
	svc, database := newWorkoutService(t)
	ctx := context.Background()

	_, err := svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryCore, Name: "Crunches", Level: 2}, Reps: -1},
	}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReps)

	sessions := repository.NewSQLiteSessionRepo(database)
	count, err := sessions.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "nothing persisted on validation failure")
}

func TestRecordSession_RejectsEmptySession(t *testing.T) {
	svc, _ := newWorkoutService(t)

	_, err := svc.RecordSession(context.Background(), nil, 3)
	require.Error(t, err)
}

func TestRecordSession_RollsBackOnMidTransactionFailure(t *testing.T) {
	database := testutil.NewSeededTestDB(t)
	ctx := context.Background()

	injected := errors.New("disk full")
	svc := NewWorkoutService(
		repository.NewSQLiteExerciseRepo(database),
		repository.NewSQLiteProgressRepo(database),
		repository.NewSQLiteProfileRepo(database),
		// Session insert (1), first exercise insert (2), first progress
		// upsert (3): fail on the second exercise's insert.
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected},
	)

	_, err := svc.RecordSession(ctx, []ExerciseResult{
		{Exercise: domain.Exercise{Category: domain.CategoryPushups, Name: "Wall Push-ups", Level: 1}, Reps: 20},
		{Exercise: domain.Exercise{Category: domain.CategorySquats, Name: "Chair Squats", Level: 1}, Reps: 10},
	}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	// The whole session rolled back: no session rows, no exercise rows,
	// and crucially no progress update from the first (successful) exercise.
	sessions := repository.NewSQLiteSessionRepo(database)
	count, err := sessions.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	progress := repository.NewSQLiteProgressRepo(database)
	_, err = progress.Get(ctx, domain.CategoryPushups)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
