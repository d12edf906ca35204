package progression

// AdvanceThreshold is the rep count at which a category moves to the next
// difficulty level. Closed lower bound: hitting exactly 15 advances.
const AdvanceThreshold = 15

// NextLevel decides a category's state after a set of reps.
// Returns the new level and the new max-reps value for that level.
// Total over its domain: non-negative reps, level within [1, maxLevel].
//
// The best rep count only ratchets upward, so a failed attempt (0 reps)
// never loses progress. On advancement the counter resets to 0 because it
// measures performance at the current level only. At the ceiling the level
// is pinned but reps keep accumulating.
func NextLevel(currentLevel, maxReps, repsPerformed, maxLevel int) (int, int) {
	effective := maxReps
	if repsPerformed > effective {
		effective = repsPerformed
	}

	if effective >= AdvanceThreshold && currentLevel < maxLevel {
		return currentLevel + 1, 0
	}
	return currentLevel, effective
}

// ReadyToAdvance reports whether a rep count at the given level would
// trigger advancement. Used for the level-up hint in the workout plan.
func ReadyToAdvance(currentLevel, reps, maxLevel int) bool {
	return reps >= AdvanceThreshold && currentLevel < maxLevel
}
