package models

// DaysOfWeek are the seven fixed meal-plan keys, in display order.
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ValidDay reports whether day is one of the seven weekday labels.
func ValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// MealPlan maps a weekday to an ordered list of recipe snapshots.
// Snapshots are full denormalized copies, so later edits to the source
// recipe do not propagate into the plan.
type MealPlan map[string][]Recipe

// Clone returns a deep copy.
func (m MealPlan) Clone() MealPlan {
	out := make(MealPlan, len(m))
	for day, recipes := range m {
		copies := make([]Recipe, len(recipes))
		for i, r := range recipes {
			copies[i] = r.Clone()
		}
		out[day] = copies
	}
	return out
}
