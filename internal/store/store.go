// Package store provides the SurrealDB-backed mutation primitives for the
// tracker tables. The executor talks to the Store interface only; tests
// substitute an in-memory fake.
package store

import (
	"context"
	"errors"

	"github.com/raphaelgruber/isha-go/internal/models"
)

// ErrNotFound indicates no row matched an update/delete target.
var ErrNotFound = errors.New("no matching row")

// Store is the set of per-entity mutation primitives the executor needs.
//
// Delete* methods accept an optional id and a fuzzy name: when the id is
// empty, matching is a case-insensitive substring match on the name column
// and ALL matches are removed. FindLatest*Match methods resolve update
// targets the same way but return only the most recently created match.
type Store interface {
	// Workouts. Updates append a new row, so there is no update primitive.
	InsertWorkout(ctx context.Context, w models.Workout) (*models.Workout, error)
	DeleteWorkouts(ctx context.Context, id, name string) ([]models.Workout, error)

	// Diet logs, keyed by plan slot (week, day, meal_type).
	FindDietLogBySlot(ctx context.Context, mealType string, week int, day string) (*models.DietLog, error)
	InsertDietLog(ctx context.Context, d models.DietLog) (*models.DietLog, error)
	DeleteDietLogBySlot(ctx context.Context, mealType string, week int, day string) ([]models.DietLog, error)
	DeleteDietLogs(ctx context.Context, id, foodName string) ([]models.DietLog, error)

	// Recipes.
	InsertRecipe(ctx context.Context, r models.Recipe) (*models.Recipe, error)
	FindRecipeForDay(ctx context.Context, dayOfMonth int, mealType string) (*models.Recipe, error)
	FindLatestRecipeMatch(ctx context.Context, name string) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, fields map[string]any) (*models.Recipe, error)
	DeleteRecipes(ctx context.Context, id, name string) ([]models.Recipe, error)

	// Steps, one row per date. Increment and replace are distinct on
	// purpose: "add 1000 steps" accumulates, "update steps to 1000" resets.
	FindStepsByDate(ctx context.Context, date string) (*models.Steps, error)
	InsertSteps(ctx context.Context, s models.Steps) (*models.Steps, error)
	AddStepsToDate(ctx context.Context, date string, delta int) (*models.Steps, error)
	SetStepsForDate(ctx context.Context, date string, total int) (*models.Steps, error)

	// Body measurements. Columns are resolved through the closed
	// measurement map before any of these are called.
	FindLatestMeasurement(ctx context.Context) (*models.Measurement, error)
	InsertMeasurement(ctx context.Context, column string, value float64) (*models.Measurement, error)
	SetMeasurementColumn(ctx context.Context, id, column string, value *float64) (*models.Measurement, error)

	// Reminders.
	InsertReminder(ctx context.Context, r models.Reminder) (*models.Reminder, error)
	FindLatestReminderMatch(ctx context.Context, name string) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, id string, fields map[string]any) (*models.Reminder, error)
	DeleteReminders(ctx context.Context, id, name string) ([]models.Reminder, error)

	// Shopping list.
	InsertShoppingItem(ctx context.Context, s models.ShoppingItem) (*models.ShoppingItem, error)
	FindLatestShoppingMatch(ctx context.Context, name string) (*models.ShoppingItem, error)
	UpdateShoppingItem(ctx context.Context, id string, fields map[string]any) (*models.ShoppingItem, error)
	DeleteShoppingItems(ctx context.Context, id, name string) ([]models.ShoppingItem, error)

	// Wishlist.
	InsertWishlistItem(ctx context.Context, w models.WishlistItem) (*models.WishlistItem, error)
	FindLatestWishlistMatch(ctx context.Context, name string) (*models.WishlistItem, error)
	UpdateWishlistItem(ctx context.Context, id string, fields map[string]any) (*models.WishlistItem, error)
	DeleteWishlistItems(ctx context.Context, id, name string) ([]models.WishlistItem, error)
}
