package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/storage"
)

func newPlan(t *testing.T) (*MealPlanService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemory()
	svc, err := NewMealPlanService(store)
	require.NoError(t, err)
	return svc, store
}

func meal(id, title string, calories float64) models.Recipe {
	return models.Recipe{
		ID:              id,
		Title:           title,
		Category:        models.CategoryDinner,
		CookingTime:     30,
		Servings:        2,
		NutritionalInfo: models.NutritionalInfo{Calories: calories, Protein: 10, Fat: 5, Carbs: 20},
	}
}

func TestFreshPlanIsEmpty(t *testing.T) {
	svc, _ := newPlan(t)

	assert.Empty(t, svc.Plan())
	assert.Equal(t, models.DaysOfWeek, svc.Days())
	assert.Zero(t, svc.WeeklyTotals())
}

func TestAssignAndUnassign(t *testing.T) {
	svc, store := newPlan(t)

	require.NoError(t, svc.Assign("Monday", meal("1", "Pho", 400)))
	require.NoError(t, svc.Assign("Monday", meal("2", "Banh Mi", 550)))

	plan := svc.Plan()
	require.Len(t, plan["Monday"], 2)
	assert.Equal(t, "Pho", plan["Monday"][0].Title)

	assert.ErrorIs(t, svc.Assign("Funday", meal("3", "X", 1)), ErrUnknownDay)

	require.NoError(t, svc.Unassign("Monday", 0))
	plan = svc.Plan()
	require.Len(t, plan["Monday"], 1)
	assert.Equal(t, "Banh Mi", plan["Monday"][0].Title)

	assert.ErrorIs(t, svc.Unassign("Monday", 5), ErrBadPosition)
	assert.ErrorIs(t, svc.Unassign("Monday", -1), ErrBadPosition)
	assert.ErrorIs(t, svc.Unassign("Funday", 0), ErrUnknownDay)

	// The plan survives a reload from the same store.
	reloaded, err := NewMealPlanService(store)
	require.NoError(t, err)
	assert.Len(t, reloaded.Plan()["Monday"], 1)
}

func TestMoveWithinDay(t *testing.T) {
	svc, _ := newPlan(t)

	for i, title := range []string{"Pho", "Banh Mi", "Goi Cuon"} {
		require.NoError(t, svc.Assign("Tuesday", meal(string(rune('1'+i)), title, 300)))
	}

	require.NoError(t, svc.MoveWithinDay("Tuesday", 2, 0))

	meals := svc.Plan()["Tuesday"]
	require.Len(t, meals, 3)
	assert.Equal(t, "Goi Cuon", meals[0].Title)
	assert.Equal(t, "Pho", meals[1].Title)
	assert.Equal(t, "Banh Mi", meals[2].Title)

	assert.ErrorIs(t, svc.MoveWithinDay("Tuesday", 0, 3), ErrBadPosition)
	assert.ErrorIs(t, svc.MoveWithinDay("Tuesday", 5, 0), ErrBadPosition)
	assert.ErrorIs(t, svc.MoveWithinDay("Funday", 0, 0), ErrUnknownDay)
}

func TestMoveAcrossDays(t *testing.T) {
	svc, _ := newPlan(t)

	require.NoError(t, svc.Assign("Wednesday", meal("1", "Pho", 400)))
	require.NoError(t, svc.Assign("Wednesday", meal("2", "Banh Mi", 550)))
	require.NoError(t, svc.Assign("Thursday", meal("3", "Goi Cuon", 150)))

	// The destination index may equal the destination's length.
	require.NoError(t, svc.MoveAcrossDays("Wednesday", 0, "Thursday", 1))

	plan := svc.Plan()
	require.Len(t, plan["Wednesday"], 1)
	require.Len(t, plan["Thursday"], 2)
	assert.Equal(t, "Banh Mi", plan["Wednesday"][0].Title)
	assert.Equal(t, "Goi Cuon", plan["Thursday"][0].Title)
	assert.Equal(t, "Pho", plan["Thursday"][1].Title)

	assert.ErrorIs(t, svc.MoveAcrossDays("Wednesday", 0, "Thursday", 5), ErrBadPosition)
	assert.ErrorIs(t, svc.MoveAcrossDays("Wednesday", 9, "Thursday", 0), ErrBadPosition)
	assert.ErrorIs(t, svc.MoveAcrossDays("Funday", 0, "Thursday", 0), ErrUnknownDay)
	assert.ErrorIs(t, svc.MoveAcrossDays("Wednesday", 0, "Funday", 0), ErrUnknownDay)
}

func TestMoveAcrossSameDayDelegates(t *testing.T) {
	svc, _ := newPlan(t)

	require.NoError(t, svc.Assign("Friday", meal("1", "Pho", 400)))
	require.NoError(t, svc.Assign("Friday", meal("2", "Banh Mi", 550)))

	require.NoError(t, svc.MoveAcrossDays("Friday", 1, "Friday", 0))

	meals := svc.Plan()["Friday"]
	assert.Equal(t, "Banh Mi", meals[0].Title)
	assert.Equal(t, "Pho", meals[1].Title)
}

func TestWeeklyTotals(t *testing.T) {
	svc, _ := newPlan(t)

	require.NoError(t, svc.Assign("Monday", meal("1", "Pho", 400)))
	require.NoError(t, svc.Assign("Saturday", meal("2", "Banh Mi", 550)))

	totals := svc.WeeklyTotals()
	assert.Equal(t, 950.0, totals.Calories)
	assert.Equal(t, 20.0, totals.Protein)
	assert.Equal(t, 10.0, totals.Fat)
	assert.Equal(t, 40.0, totals.Carbs)

	require.NoError(t, svc.Unassign("Monday", 0))
	assert.Equal(t, 550.0, svc.WeeklyTotals().Calories)
}

func TestPlanSnapshotsAreIndependent(t *testing.T) {
	// The plan embeds full recipe copies; later edits to the source recipe
	// never reach meals already planned.
	svc, _ := newPlan(t)

	source := meal("1", "Pho", 400)
	require.NoError(t, svc.Assign("Sunday", source))

	source.Title = "renamed"
	source.NutritionalInfo.Calories = 9000

	planned := svc.Plan()["Sunday"][0]
	assert.Equal(t, "Pho", planned.Title)
	assert.Equal(t, 400.0, planned.NutritionalInfo.Calories)

	// Mutating a returned snapshot is equally invisible.
	got := svc.Plan()
	got["Sunday"][0].Title = "mutated"
	assert.Equal(t, "Pho", svc.Plan()["Sunday"][0].Title)
}
