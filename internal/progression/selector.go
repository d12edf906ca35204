package progression

import (
	"math/rand/v2"
	"sort"

	"github.com/alexanderramin/snacks/internal/domain"
)

// DefaultSessionSize is how many distinct categories a session targets.
const DefaultSessionSize = 4

// SelectExercises picks up to sessionSize exercises for one session:
// one per distinct category, each performable with the available equipment,
// at the category's current progression level. Category choice is random;
// when fewer categories qualify than sessionSize, the session shrinks
// rather than repeating a category. Returns nil when nothing qualifies.
func SelectExercises(
	catalog []domain.Exercise,
	progress map[domain.Category]domain.CategoryProgress,
	available domain.EquipmentSet,
	sessionSize int,
) []domain.Exercise {
	byCategory := make(map[domain.Category][]domain.Exercise)
	for _, ex := range catalog {
		if ex.Performable(available) {
			byCategory[ex.Category] = append(byCategory[ex.Category], ex)
		}
	}

	categories := make([]domain.Category, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	// Map iteration order is already unspecified; the explicit shuffle makes
	// the randomness a contract rather than an accident.
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	rand.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})

	if sessionSize > len(categories) {
		sessionSize = len(categories)
	}

	var selected []domain.Exercise
	for _, c := range categories[:sessionSize] {
		p, ok := progress[c]
		if !ok {
			p = domain.BaselineProgress(c)
		}
		selected = append(selected, pickAtLevel(byCategory[c], p.Level))
	}
	return selected
}

// pickAtLevel returns the candidate at exactly the wanted level, else the
// hardest candidate below it, else the easiest candidate overall. Candidates
// are non-empty and already filtered by equipment, so a stored level that
// today's equipment cannot reach clamps to the nearest reachable rung.
func pickAtLevel(candidates []domain.Exercise, level int) domain.Exercise {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Level < candidates[j].Level
	})

	best := candidates[0]
	for _, ex := range candidates {
		if ex.Level == level {
			return ex
		}
		if ex.Level < level && ex.Level > best.Level {
			best = ex
		}
	}
	if best.Level <= level {
		return best
	}
	return candidates[0]
}

// PreviousRung returns the exercise one level below the given one within the
// reachable part of its category ladder, or nil if it is the lowest rung.
// Shown alongside a planned exercise as the fallback variant.
func PreviousRung(catalog []domain.Exercise, ex domain.Exercise, available domain.EquipmentSet) *domain.Exercise {
	var prev *domain.Exercise
	for i := range catalog {
		c := catalog[i]
		if c.Category != ex.Category || c.Level >= ex.Level || !c.Performable(available) {
			continue
		}
		if prev == nil || c.Level > prev.Level {
			prev = &c
		}
	}
	return prev
}

// MaxLevel returns the highest defined level for a category across the whole
// catalog, ignoring equipment. Zero when the category has no exercises.
func MaxLevel(catalog []domain.Exercise, c domain.Category) int {
	max := 0
	for _, ex := range catalog {
		if ex.Category == c && ex.Level > max {
			max = ex.Level
		}
	}
	return max
}
