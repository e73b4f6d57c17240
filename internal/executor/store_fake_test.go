package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/store"
)

// fakeStore is an in-memory Store. Slices keep insertion order, which stands
// in for creation time: FindLatest* scans from the back.
type fakeStore struct {
	workouts  []models.Workout
	dietLogs  []models.DietLog
	recipes   []models.Recipe
	steps     []models.Steps
	latest    *models.Measurement
	reminders []models.Reminder
	shopping  []models.ShoppingItem
	wishlist  []models.WishlistItem

	nextID int
	err    error // when set, every call fails with it
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) id(table string) string {
	f.nextID++
	return fmt.Sprintf("%s:%d", table, f.nextID)
}

func fuzzyMatch(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (f *fakeStore) InsertWorkout(_ context.Context, w models.Workout) (*models.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	w.ID = f.id("workout")
	f.workouts = append(f.workouts, w)
	return &w, nil
}

func (f *fakeStore) DeleteWorkouts(_ context.Context, id, name string) ([]models.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted []models.Workout
	var kept []models.Workout
	for _, w := range f.workouts {
		if (id != "" && w.ID == id) || (id == "" && name != "" && fuzzyMatch(w.WorkoutName, name)) {
			deleted = append(deleted, w)
		} else {
			kept = append(kept, w)
		}
	}
	f.workouts = kept
	return deleted, nil
}

func (f *fakeStore) FindDietLogBySlot(_ context.Context, mealType string, week int, day string) (*models.DietLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.dietLogs) - 1; i >= 0; i-- {
		d := f.dietLogs[i]
		if d.MealType == mealType && d.Week == week && d.Day == day {
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertDietLog(_ context.Context, d models.DietLog) (*models.DietLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	d.ID = f.id("diet_log")
	f.dietLogs = append(f.dietLogs, d)
	return &d, nil
}

func (f *fakeStore) DeleteDietLogBySlot(_ context.Context, mealType string, week int, day string) ([]models.DietLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.DietLog
	for _, d := range f.dietLogs {
		if d.MealType == mealType && d.Week == week && d.Day == day {
			deleted = append(deleted, d)
		} else {
			kept = append(kept, d)
		}
	}
	f.dietLogs = kept
	return deleted, nil
}

func (f *fakeStore) DeleteDietLogs(_ context.Context, id, foodName string) ([]models.DietLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.DietLog
	for _, d := range f.dietLogs {
		if (id != "" && d.ID == id) || (id == "" && foodName != "" && fuzzyMatch(d.FoodName, foodName)) {
			deleted = append(deleted, d)
		} else {
			kept = append(kept, d)
		}
	}
	f.dietLogs = kept
	return deleted, nil
}

func (f *fakeStore) InsertRecipe(_ context.Context, r models.Recipe) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = f.id("food_recipe")
	f.recipes = append(f.recipes, r)
	return &r, nil
}

func (f *fakeStore) FindRecipeForDay(_ context.Context, dayOfMonth int, mealType string) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.recipes) - 1; i >= 0; i-- {
		r := f.recipes[i]
		if r.DayOfMonth == dayOfMonth && r.MealType == mealType {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindLatestRecipeMatch(_ context.Context, name string) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.recipes) - 1; i >= 0; i-- {
		if fuzzyMatch(f.recipes[i].FoodName, name) {
			r := f.recipes[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateRecipe(_ context.Context, id string, fields map[string]any) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.recipes {
		if f.recipes[i].ID != id {
			continue
		}
		r := &f.recipes[i]
		for k, v := range fields {
			switch k {
			case "food_name":
				r.FoodName = v.(string)
			case "week":
				r.Week = v.(int)
			case "day":
				r.Day = v.(string)
			case "meal_type":
				r.MealType = v.(string)
			case "ingredients":
				r.Ingredients = v.([]string)
			case "servings":
				r.Servings = v.(int)
			case "instructions":
				r.Instructions = v.(string)
			case "approx_calories":
				n := v.(int)
				r.ApproxCalories = &n
			case "protein":
				x := v.(float64)
				r.Protein = &x
			case "fat":
				x := v.(float64)
				r.Fat = &x
			case "carbs":
				x := v.(float64)
				r.Carbs = &x
			}
		}
		out := *r
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) DeleteRecipes(_ context.Context, id, name string) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.Recipe
	for _, r := range f.recipes {
		if (id != "" && r.ID == id) || (id == "" && name != "" && fuzzyMatch(r.FoodName, name)) {
			deleted = append(deleted, r)
		} else {
			kept = append(kept, r)
		}
	}
	f.recipes = kept
	return deleted, nil
}

func (f *fakeStore) FindStepsByDate(_ context.Context, date string) (*models.Steps, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.steps {
		if f.steps[i].Date == date {
			s := f.steps[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertSteps(_ context.Context, s models.Steps) (*models.Steps, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = f.id("steps")
	f.steps = append(f.steps, s)
	return &s, nil
}

func (f *fakeStore) AddStepsToDate(_ context.Context, date string, delta int) (*models.Steps, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.steps {
		if f.steps[i].Date == date {
			f.steps[i].Steps += delta
			s := f.steps[i]
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) SetStepsForDate(_ context.Context, date string, total int) (*models.Steps, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.steps {
		if f.steps[i].Date == date {
			f.steps[i].Steps = total
			s := f.steps[i]
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindLatestMeasurement(_ context.Context) (*models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.latest == nil {
		return nil, nil
	}
	m := *f.latest
	return &m, nil
}

func setMeasurementColumn(m *models.Measurement, column string, value *float64) {
	switch column {
	case "weight":
		m.Weight = value
	case "height":
		m.Height = value
	case "neck":
		m.Neck = value
	case "chest":
		m.Chest = value
	case "waist":
		m.Waist = value
	case "stomach":
		m.Stomach = value
	case "shoulder_width":
		m.ShoulderWidth = value
	case "left_bicep":
		m.LeftBicep = value
	case "right_bicep":
		m.RightBicep = value
	case "bench_max":
		m.BenchMax = value
	case "deadlift_max":
		m.DeadliftMax = value
	}
}

func (f *fakeStore) InsertMeasurement(_ context.Context, column string, value float64) (*models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	m := &models.Measurement{ID: f.id("body_measurement")}
	setMeasurementColumn(m, column, &value)
	f.latest = m
	out := *m
	return &out, nil
}

func (f *fakeStore) SetMeasurementColumn(_ context.Context, id, column string, value *float64) (*models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.latest == nil || f.latest.ID != id {
		return nil, store.ErrNotFound
	}
	setMeasurementColumn(f.latest, column, value)
	out := *f.latest
	return &out, nil
}

func (f *fakeStore) InsertReminder(_ context.Context, r models.Reminder) (*models.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = f.id("reminder")
	if r.Enabled == nil {
		enabled := true
		r.Enabled = &enabled
	}
	f.reminders = append(f.reminders, r)
	return &r, nil
}

func (f *fakeStore) FindLatestReminderMatch(_ context.Context, name string) (*models.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.reminders) - 1; i >= 0; i-- {
		if fuzzyMatch(f.reminders[i].ReminderName, name) {
			r := f.reminders[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateReminder(_ context.Context, id string, fields map[string]any) (*models.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reminders {
		if f.reminders[i].ID != id {
			continue
		}
		r := &f.reminders[i]
		for k, v := range fields {
			switch k {
			case "reminder_name":
				r.ReminderName = v.(string)
			case "reminder_time":
				r.ReminderTime = v.(string)
			case "date":
				r.Date = v.(string)
			case "day":
				r.Day = v.(string)
			case "enabled":
				b := v.(bool)
				r.Enabled = &b
			}
		}
		out := *r
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) DeleteReminders(_ context.Context, id, name string) ([]models.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.Reminder
	for _, r := range f.reminders {
		if (id != "" && r.ID == id) || (id == "" && name != "" && fuzzyMatch(r.ReminderName, name)) {
			deleted = append(deleted, r)
		} else {
			kept = append(kept, r)
		}
	}
	f.reminders = kept
	return deleted, nil
}

func (f *fakeStore) InsertShoppingItem(_ context.Context, s models.ShoppingItem) (*models.ShoppingItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = f.id("shopping_item")
	f.shopping = append(f.shopping, s)
	return &s, nil
}

func (f *fakeStore) FindLatestShoppingMatch(_ context.Context, name string) (*models.ShoppingItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.shopping) - 1; i >= 0; i-- {
		if fuzzyMatch(f.shopping[i].GroceryName, name) {
			s := f.shopping[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateShoppingItem(_ context.Context, id string, fields map[string]any) (*models.ShoppingItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.shopping {
		if f.shopping[i].ID != id {
			continue
		}
		s := &f.shopping[i]
		for k, v := range fields {
			switch k {
			case "grocery_name":
				s.GroceryName = v.(string)
			case "amount":
				s.Amount = v.(string)
			case "price_rupees":
				s.PriceRupees = v.(float64)
			}
		}
		out := *s
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) DeleteShoppingItems(_ context.Context, id, name string) ([]models.ShoppingItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.ShoppingItem
	for _, s := range f.shopping {
		if (id != "" && s.ID == id) || (id == "" && name != "" && fuzzyMatch(s.GroceryName, name)) {
			deleted = append(deleted, s)
		} else {
			kept = append(kept, s)
		}
	}
	f.shopping = kept
	return deleted, nil
}

func (f *fakeStore) InsertWishlistItem(_ context.Context, w models.WishlistItem) (*models.WishlistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	w.ID = f.id("wishlist_item")
	f.wishlist = append(f.wishlist, w)
	return &w, nil
}

func (f *fakeStore) FindLatestWishlistMatch(_ context.Context, name string) (*models.WishlistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.wishlist) - 1; i >= 0; i-- {
		if fuzzyMatch(f.wishlist[i].ItemName, name) {
			w := f.wishlist[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateWishlistItem(_ context.Context, id string, fields map[string]any) (*models.WishlistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.wishlist {
		if f.wishlist[i].ID != id {
			continue
		}
		w := &f.wishlist[i]
		for k, v := range fields {
			switch k {
			case "item_name":
				w.ItemName = v.(string)
			case "estimated_price":
				x := v.(float64)
				w.EstimatedPrice = &x
			case "category":
				w.Category = v.(string)
			case "priority":
				w.Priority = v.(string)
			}
		}
		out := *w
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) DeleteWishlistItems(_ context.Context, id, name string) ([]models.WishlistItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var deleted, kept []models.WishlistItem
	for _, w := range f.wishlist {
		if (id != "" && w.ID == id) || (id == "" && name != "" && fuzzyMatch(w.ItemName, name)) {
			deleted = append(deleted, w)
		} else {
			kept = append(kept, w)
		}
	}
	f.wishlist = kept
	return deleted, nil
}
