package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

const mealPlanSlotKey = "mealPlan"

var (
	ErrUnknownDay  = errors.New("unknown weekday")
	ErrBadPosition = errors.New("position out of range")
)

// MealPlanService owns the weekly plan: a fixed seven-key weekday map of
// recipe snapshots. Unlike the id-referencing stores, it embeds full
// recipe copies, so catalog edits never propagate into the plan.
type MealPlanService struct {
	mu   sync.RWMutex
	log  zerolog.Logger
	slot storage.Slot[models.MealPlan]
	plan models.MealPlan
}

// NewMealPlanService loads the meal-plan slot, seeding an empty plan on
// first run.
func NewMealPlanService(store storage.Store) (*MealPlanService, error) {
	s := &MealPlanService{
		log:  logger.For("mealplan"),
		slot: storage.NewSlot[models.MealPlan](store, mealPlanSlotKey),
	}

	plan, err := loadOrSeed(s.slot, seed.MealPlan, s.log)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = models.MealPlan{}
	}
	s.plan = plan
	return s, nil
}

// Plan returns a deep copy of the whole week.
func (s *MealPlanService) Plan() models.MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan.Clone()
}

// Days returns the seven weekday labels in display order.
func (s *MealPlanService) Days() []string {
	return cloneStrings(models.DaysOfWeek)
}

// Assign appends a snapshot of the recipe to the day's meal list.
func (s *MealPlanService) Assign(day string, recipe models.Recipe) error {
	if !models.ValidDay(day) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.plan.Clone()
	next[day] = append(next[day], recipe.Clone())
	return s.save(next)
}

// Unassign removes the meal at index from the day's list.
func (s *MealPlanService) Unassign(day string, index int) error {
	if !models.ValidDay(day) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.plan.Clone()
	meals := next[day]
	if index < 0 || index >= len(meals) {
		return fmt.Errorf("%w: %s[%d]", ErrBadPosition, day, index)
	}
	next[day] = append(meals[:index], meals[index+1:]...)
	return s.save(next)
}

// MoveWithinDay reorders one day's meals, removing the meal at from and
// reinserting it at to.
func (s *MealPlanService) MoveWithinDay(day string, from, to int) error {
	if !models.ValidDay(day) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.plan.Clone()
	meals := next[day]
	if from < 0 || from >= len(meals) || to < 0 || to >= len(meals) {
		return fmt.Errorf("%w: %s[%d -> %d]", ErrBadPosition, day, from, to)
	}
	moved := meals[from]
	meals = append(meals[:from], meals[from+1:]...)
	meals = append(meals[:to], append([]models.Recipe{moved}, meals[to:]...)...)
	next[day] = meals
	return s.save(next)
}

// MoveAcrossDays moves a meal from one day to a position in another.
// The destination index may equal the destination's length (append).
func (s *MealPlanService) MoveAcrossDays(fromDay string, from int, toDay string, to int) error {
	if !models.ValidDay(fromDay) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, fromDay)
	}
	if !models.ValidDay(toDay) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, toDay)
	}
	if fromDay == toDay {
		return s.MoveWithinDay(fromDay, from, to)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.plan.Clone()
	source := next[fromDay]
	dest := next[toDay]
	if from < 0 || from >= len(source) {
		return fmt.Errorf("%w: %s[%d]", ErrBadPosition, fromDay, from)
	}
	if to < 0 || to > len(dest) {
		return fmt.Errorf("%w: %s[%d]", ErrBadPosition, toDay, to)
	}
	moved := source[from]
	next[fromDay] = append(source[:from], source[from+1:]...)
	next[toDay] = append(dest[:to], append([]models.Recipe{moved}, dest[to:]...)...)
	return s.save(next)
}

// WeeklyTotals sums calories, protein, fat, and carbs across every
// snapshot in all seven days. Recomputed on each call.
func (s *MealPlanService) WeeklyTotals() models.NutritionalInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total models.NutritionalInfo
	for _, meals := range s.plan {
		for _, r := range meals {
			total = total.Add(r.NutritionalInfo)
		}
	}
	return total
}

// save persists the transformed plan, then swaps the snapshot. Must be
// called with the write lock held.
func (s *MealPlanService) save(next models.MealPlan) error {
	if err := s.slot.Save(next); err != nil {
		return err
	}
	s.plan = next
	return nil
}
