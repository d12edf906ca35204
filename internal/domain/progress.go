package domain

// CategoryProgress is the persisted progression state of one category:
// the rung the user currently trains at and the best rep count recorded
// at that rung. MaxReps resets to 0 whenever Level advances.
type CategoryProgress struct {
	Category Category
	Level    int
	MaxReps  int
}

// BaselineProgress is the state of a category that has never been trained.
func BaselineProgress(c Category) CategoryProgress {
	return CategoryProgress{Category: c, Level: 1, MaxReps: 0}
}
