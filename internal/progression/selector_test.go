package progression

import (
	"testing"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ladder(c domain.Category, levels int, equipment ...domain.Equipment) []domain.Exercise {
	var out []domain.Exercise
	for l := 1; l <= levels; l++ {
		out = append(out, domain.Exercise{
			Category:  c,
			Name:      string(c) + "-" + string(rune('0'+l)),
			Level:     l,
			Equipment: domain.NewEquipmentSet(equipment...),
		})
	}
	return out
}

func testCatalog() []domain.Exercise {
	var catalog []domain.Exercise
	catalog = append(catalog, ladder(domain.CategoryPushups, 5)...)
	catalog = append(catalog, ladder(domain.CategorySquats, 5)...)
	catalog = append(catalog, ladder(domain.CategoryCore, 5)...)
	catalog = append(catalog, ladder(domain.CategoryPullups, 5, domain.EquipmentPullupBar)...)
	catalog = append(catalog, ladder(domain.CategoryCardio, 3, domain.EquipmentTreadmill)...)
	return catalog
}

func TestSelectExercises_DistinctCategoriesAndEquipment(t *testing.T) {
	catalog := testCatalog()

	for run := 0; run < 25; run++ {
		selected := SelectExercises(catalog, nil, nil, 4)

		// Only the three bodyweight ladders qualify.
		require.Len(t, selected, 3)
		seen := make(map[domain.Category]bool)
		for _, ex := range selected {
			assert.False(t, seen[ex.Category], "category %s repeated", ex.Category)
			seen[ex.Category] = true
			assert.True(t, ex.Performable(nil), "%s needs equipment %s", ex.Name, ex.Equipment)
		}
		assert.False(t, seen[domain.CategoryPullups])
		assert.False(t, seen[domain.CategoryCardio])
	}
}

func TestSelectExercises_UsesCurrentLevel(t *testing.T) {
	catalog := testCatalog()
	progress := map[domain.Category]domain.CategoryProgress{
		domain.CategoryPushups: {Category: domain.CategoryPushups, Level: 3, MaxReps: 9},
		domain.CategorySquats:  {Category: domain.CategorySquats, Level: 5, MaxReps: 2},
	}

	selected := SelectExercises(catalog, progress, nil, 3)
	require.Len(t, selected, 3)
	for _, ex := range selected {
		switch ex.Category {
		case domain.CategoryPushups:
			assert.Equal(t, 3, ex.Level)
		case domain.CategorySquats:
			assert.Equal(t, 5, ex.Level)
		default:
			// No progress row: baseline level 1.
			assert.Equal(t, 1, ex.Level)
		}
	}
}

func TestSelectExercises_ShrinksToAvailableCategories(t *testing.T) {
	catalog := ladder(domain.CategoryPushups, 5)
	selected := SelectExercises(catalog, nil, nil, 4)
	require.Len(t, selected, 1)
	assert.Equal(t, domain.CategoryPushups, selected[0].Category)
}

func TestSelectExercises_EmptyWhenNothingQualifies(t *testing.T) {
	catalog := ladder(domain.CategoryPullups, 5, domain.EquipmentPullupBar)
	assert.Empty(t, SelectExercises(catalog, nil, nil, 4))
}

func TestSelectExercises_EquipmentUnlocksLadder(t *testing.T) {
	catalog := testCatalog()
	available := domain.NewEquipmentSet(domain.EquipmentPullupBar, domain.EquipmentTreadmill)

	// All five categories qualify now; over enough runs the equipment
	// ladders must show up.
	sawPullups := false
	for run := 0; run < 50 && !sawPullups; run++ {
		for _, ex := range SelectExercises(catalog, nil, available, 4) {
			if ex.Category == domain.CategoryPullups {
				sawPullups = true
			}
		}
	}
	assert.True(t, sawPullups)
}

func TestPickAtLevel_ClampsToReachableRung(t *testing.T) {
	// Bodyweight rungs at 1..3, equipment-only rungs above filtered out.
	candidates := ladder(domain.CategoryDips, 3)

	assert.Equal(t, 2, pickAtLevel(candidates, 2).Level)
	// Stored level beyond what equipment supports clamps down.
	assert.Equal(t, 3, pickAtLevel(candidates, 7).Level)
}

func TestPickAtLevel_GapsFallToLowerRung(t *testing.T) {
	candidates := []domain.Exercise{
		{Category: domain.CategoryCardio, Name: "a", Level: 2},
		{Category: domain.CategoryCardio, Name: "b", Level: 6},
	}
	assert.Equal(t, 2, pickAtLevel(candidates, 4).Level)
	// Nothing at or below the wanted level: easiest rung.
	assert.Equal(t, 2, pickAtLevel(candidates, 1).Level)
}

func TestPreviousRung(t *testing.T) {
	catalog := testCatalog()
	ex := domain.Exercise{Category: domain.CategoryPushups, Level: 3}

	prev := PreviousRung(catalog, ex, nil)
	require.NotNil(t, prev)
	assert.Equal(t, 2, prev.Level)
	assert.Equal(t, domain.CategoryPushups, prev.Category)

	lowest := domain.Exercise{Category: domain.CategoryPushups, Level: 1}
	assert.Nil(t, PreviousRung(catalog, lowest, nil))
}

func TestMaxLevel(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, 5, MaxLevel(catalog, domain.CategoryPushups))
	assert.Equal(t, 3, MaxLevel(catalog, domain.CategoryCardio))
	assert.Equal(t, 0, MaxLevel(catalog, domain.CategoryYoga))
}
