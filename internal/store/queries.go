package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/models"
)

// Fuzzy matching predicate: case-insensitive substring on a name column.
// The column name is always a literal from this file, never user input.
func fuzzy(column string) string {
	return fmt.Sprintf("string::contains(string::lowercase(%s), string::lowercase($name))", column)
}

// buildSet assembles a SET clause from an allow-listed field map. Columns are
// emitted in allow-list order so the generated SQL is deterministic.
func buildSet(fields map[string]any, allowed []string) (string, map[string]any, error) {
	var clauses []string
	vars := map[string]any{}
	for _, col := range allowed {
		v, ok := fields[col]
		if !ok {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s = $set_%s", col, col))
		vars["set_"+col] = v
	}
	if len(clauses) == 0 {
		return "", nil, fmt.Errorf("no updatable fields in %v", fields)
	}
	return strings.Join(clauses, ", "), vars, nil
}

// --- Workouts -------------------------------------------------------------

func (c *Client) InsertWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	row, err := queryFirst[models.Workout](ctx, c,
		`CREATE workout CONTENT $data RETURN AFTER`,
		map[string]any{"data": w})
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	return row, nil
}

func (c *Client) DeleteWorkouts(ctx context.Context, id, name string) ([]models.Workout, error) {
	if id != "" {
		rows, err := queryRows[models.Workout](ctx, c,
			`DELETE type::record("workout", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete workout by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.Workout](ctx, c,
		`DELETE workout WHERE `+fuzzy("workout_name")+` RETURN BEFORE`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("delete workouts by name: %w", err)
	}
	return rows, nil
}

// --- Diet logs ------------------------------------------------------------

func (c *Client) FindDietLogBySlot(ctx context.Context, mealType string, week int, day string) (*models.DietLog, error) {
	row, err := queryFirst[models.DietLog](ctx, c, `
		SELECT * FROM diet_log
		WHERE string::lowercase(meal_type) = string::lowercase($meal_type)
			AND week = $week AND day = $day
		LIMIT 1
	`, map[string]any{"meal_type": mealType, "week": week, "day": day})
	if err != nil {
		return nil, fmt.Errorf("find diet log: %w", err)
	}
	return row, nil
}

func (c *Client) InsertDietLog(ctx context.Context, d models.DietLog) (*models.DietLog, error) {
	row, err := queryFirst[models.DietLog](ctx, c,
		`CREATE diet_log CONTENT $data RETURN AFTER`,
		map[string]any{"data": d})
	if err != nil {
		return nil, fmt.Errorf("insert diet log: %w", err)
	}
	return row, nil
}

func (c *Client) DeleteDietLogBySlot(ctx context.Context, mealType string, week int, day string) ([]models.DietLog, error) {
	rows, err := queryRows[models.DietLog](ctx, c, `
		DELETE diet_log
		WHERE string::lowercase(meal_type) = string::lowercase($meal_type)
			AND week = $week AND day = $day
		RETURN BEFORE
	`, map[string]any{"meal_type": mealType, "week": week, "day": day})
	if err != nil {
		return nil, fmt.Errorf("delete diet log by slot: %w", err)
	}
	return rows, nil
}

func (c *Client) DeleteDietLogs(ctx context.Context, id, foodName string) ([]models.DietLog, error) {
	if id != "" {
		rows, err := queryRows[models.DietLog](ctx, c,
			`DELETE type::record("diet_log", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete diet log by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.DietLog](ctx, c,
		`DELETE diet_log WHERE `+fuzzy("food_name")+` RETURN BEFORE`,
		map[string]any{"name": foodName})
	if err != nil {
		return nil, fmt.Errorf("delete diet logs by name: %w", err)
	}
	return rows, nil
}

// --- Recipes --------------------------------------------------------------

var recipeUpdateColumns = []string{
	"week", "day", "day_of_month", "meal_type", "food_name",
	"ingredients", "servings", "instructions", "approx_calories",
	"protein", "fat", "carbs",
}

func (c *Client) InsertRecipe(ctx context.Context, r models.Recipe) (*models.Recipe, error) {
	row, err := queryFirst[models.Recipe](ctx, c,
		`CREATE food_recipe CONTENT $data RETURN AFTER`,
		map[string]any{"data": r})
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	return row, nil
}

func (c *Client) FindRecipeForDay(ctx context.Context, dayOfMonth int, mealType string) (*models.Recipe, error) {
	row, err := queryFirst[models.Recipe](ctx, c, `
		SELECT * FROM food_recipe
		WHERE day_of_month = $dom
			AND string::lowercase(meal_type) = string::lowercase($meal_type)
		ORDER BY created DESC
		LIMIT 1
	`, map[string]any{"dom": dayOfMonth, "meal_type": mealType})
	if err != nil {
		return nil, fmt.Errorf("find recipe for day: %w", err)
	}
	return row, nil
}

func (c *Client) FindLatestRecipeMatch(ctx context.Context, name string) (*models.Recipe, error) {
	row, err := queryFirst[models.Recipe](ctx, c,
		`SELECT * FROM food_recipe WHERE `+fuzzy("food_name")+` ORDER BY created DESC LIMIT 1`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find recipe match: %w", err)
	}
	return row, nil
}

func (c *Client) UpdateRecipe(ctx context.Context, id string, fields map[string]any) (*models.Recipe, error) {
	set, vars, err := buildSet(fields, recipeUpdateColumns)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	vars["id"] = bareID(id)
	row, err := queryFirst[models.Recipe](ctx, c,
		`UPDATE type::record("food_recipe", $id) SET `+set+` RETURN AFTER`, vars)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("update recipe %s: %w", id, ErrNotFound)
	}
	return row, nil
}

func (c *Client) DeleteRecipes(ctx context.Context, id, name string) ([]models.Recipe, error) {
	if id != "" {
		rows, err := queryRows[models.Recipe](ctx, c,
			`DELETE type::record("food_recipe", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete recipe by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.Recipe](ctx, c,
		`DELETE food_recipe WHERE `+fuzzy("food_name")+` RETURN BEFORE`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("delete recipes by name: %w", err)
	}
	return rows, nil
}

// --- Steps ----------------------------------------------------------------

func (c *Client) FindStepsByDate(ctx context.Context, date string) (*models.Steps, error) {
	row, err := queryFirst[models.Steps](ctx, c,
		`SELECT * FROM steps WHERE date = $date LIMIT 1`,
		map[string]any{"date": date})
	if err != nil {
		return nil, fmt.Errorf("find steps: %w", err)
	}
	return row, nil
}

func (c *Client) InsertSteps(ctx context.Context, s models.Steps) (*models.Steps, error) {
	row, err := queryFirst[models.Steps](ctx, c,
		`CREATE steps CONTENT $data RETURN AFTER`,
		map[string]any{"data": s})
	if err != nil {
		return nil, fmt.Errorf("insert steps: %w", err)
	}
	return row, nil
}

func (c *Client) AddStepsToDate(ctx context.Context, date string, delta int) (*models.Steps, error) {
	row, err := queryFirst[models.Steps](ctx, c,
		`UPDATE steps SET steps += $delta WHERE date = $date RETURN AFTER`,
		map[string]any{"date": date, "delta": delta})
	if err != nil {
		return nil, fmt.Errorf("add steps: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("add steps on %s: %w", date, ErrNotFound)
	}
	return row, nil
}

func (c *Client) SetStepsForDate(ctx context.Context, date string, total int) (*models.Steps, error) {
	row, err := queryFirst[models.Steps](ctx, c,
		`UPDATE steps SET steps = $total WHERE date = $date RETURN AFTER`,
		map[string]any{"date": date, "total": total})
	if err != nil {
		return nil, fmt.Errorf("set steps: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("set steps on %s: %w", date, ErrNotFound)
	}
	return row, nil
}

// --- Body measurements ----------------------------------------------------

func (c *Client) FindLatestMeasurement(ctx context.Context) (*models.Measurement, error) {
	row, err := queryFirst[models.Measurement](ctx, c,
		`SELECT * FROM body_measurement ORDER BY created DESC LIMIT 1`, nil)
	if err != nil {
		return nil, fmt.Errorf("find latest measurement: %w", err)
	}
	return row, nil
}

// InsertMeasurement starts a fresh snapshot with a single column set. The
// column name must come from models.MeasurementColumn; it is interpolated
// because SurrealQL cannot parameterize field names.
func (c *Client) InsertMeasurement(ctx context.Context, column string, value float64) (*models.Measurement, error) {
	sql := fmt.Sprintf(`CREATE body_measurement SET %s = $value RETURN AFTER`, column)
	row, err := queryFirst[models.Measurement](ctx, c, sql, map[string]any{"value": value})
	if err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}
	return row, nil
}

// SetMeasurementColumn updates one column on an existing snapshot. A nil
// value clears the column.
func (c *Client) SetMeasurementColumn(ctx context.Context, id, column string, value *float64) (*models.Measurement, error) {
	var sql string
	vars := map[string]any{"id": bareID(id)}
	if value == nil {
		sql = fmt.Sprintf(`UPDATE type::record("body_measurement", $id) SET %s = NONE RETURN AFTER`, column)
	} else {
		sql = fmt.Sprintf(`UPDATE type::record("body_measurement", $id) SET %s = $value RETURN AFTER`, column)
		vars["value"] = *value
	}
	row, err := queryFirst[models.Measurement](ctx, c, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("set measurement column: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("set measurement column %s: %w", column, ErrNotFound)
	}
	return row, nil
}

// --- Reminders ------------------------------------------------------------

var reminderUpdateColumns = []string{
	"reminder_name", "reminder_time", "day", "date", "enabled",
}

func (c *Client) InsertReminder(ctx context.Context, r models.Reminder) (*models.Reminder, error) {
	row, err := queryFirst[models.Reminder](ctx, c,
		`CREATE reminder CONTENT $data RETURN AFTER`,
		map[string]any{"data": r})
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	return row, nil
}

func (c *Client) FindLatestReminderMatch(ctx context.Context, name string) (*models.Reminder, error) {
	row, err := queryFirst[models.Reminder](ctx, c,
		`SELECT * FROM reminder WHERE `+fuzzy("reminder_name")+` ORDER BY created DESC LIMIT 1`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find reminder match: %w", err)
	}
	return row, nil
}

func (c *Client) UpdateReminder(ctx context.Context, id string, fields map[string]any) (*models.Reminder, error) {
	set, vars, err := buildSet(fields, reminderUpdateColumns)
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	vars["id"] = bareID(id)
	row, err := queryFirst[models.Reminder](ctx, c,
		`UPDATE type::record("reminder", $id) SET `+set+` RETURN AFTER`, vars)
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("update reminder %s: %w", id, ErrNotFound)
	}
	return row, nil
}

func (c *Client) DeleteReminders(ctx context.Context, id, name string) ([]models.Reminder, error) {
	if id != "" {
		rows, err := queryRows[models.Reminder](ctx, c,
			`DELETE type::record("reminder", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete reminder by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.Reminder](ctx, c,
		`DELETE reminder WHERE `+fuzzy("reminder_name")+` RETURN BEFORE`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("delete reminders by name: %w", err)
	}
	return rows, nil
}

// --- Shopping list --------------------------------------------------------

var shoppingUpdateColumns = []string{
	"grocery_name", "amount", "price_rupees", "day", "date",
}

func (c *Client) InsertShoppingItem(ctx context.Context, s models.ShoppingItem) (*models.ShoppingItem, error) {
	row, err := queryFirst[models.ShoppingItem](ctx, c,
		`CREATE shopping_item CONTENT $data RETURN AFTER`,
		map[string]any{"data": s})
	if err != nil {
		return nil, fmt.Errorf("insert shopping item: %w", err)
	}
	return row, nil
}

func (c *Client) FindLatestShoppingMatch(ctx context.Context, name string) (*models.ShoppingItem, error) {
	row, err := queryFirst[models.ShoppingItem](ctx, c,
		`SELECT * FROM shopping_item WHERE `+fuzzy("grocery_name")+` ORDER BY created DESC LIMIT 1`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find shopping match: %w", err)
	}
	return row, nil
}

func (c *Client) UpdateShoppingItem(ctx context.Context, id string, fields map[string]any) (*models.ShoppingItem, error) {
	set, vars, err := buildSet(fields, shoppingUpdateColumns)
	if err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	vars["id"] = bareID(id)
	row, err := queryFirst[models.ShoppingItem](ctx, c,
		`UPDATE type::record("shopping_item", $id) SET `+set+` RETURN AFTER`, vars)
	if err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("update shopping item %s: %w", id, ErrNotFound)
	}
	return row, nil
}

func (c *Client) DeleteShoppingItems(ctx context.Context, id, name string) ([]models.ShoppingItem, error) {
	if id != "" {
		rows, err := queryRows[models.ShoppingItem](ctx, c,
			`DELETE type::record("shopping_item", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete shopping item by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.ShoppingItem](ctx, c,
		`DELETE shopping_item WHERE `+fuzzy("grocery_name")+` RETURN BEFORE`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("delete shopping items by name: %w", err)
	}
	return rows, nil
}

// --- Wishlist -------------------------------------------------------------

var wishlistUpdateColumns = []string{
	"item_name", "description", "category", "estimated_price", "priority",
}

func (c *Client) InsertWishlistItem(ctx context.Context, w models.WishlistItem) (*models.WishlistItem, error) {
	row, err := queryFirst[models.WishlistItem](ctx, c,
		`CREATE wishlist_item CONTENT $data RETURN AFTER`,
		map[string]any{"data": w})
	if err != nil {
		return nil, fmt.Errorf("insert wishlist item: %w", err)
	}
	return row, nil
}

func (c *Client) FindLatestWishlistMatch(ctx context.Context, name string) (*models.WishlistItem, error) {
	row, err := queryFirst[models.WishlistItem](ctx, c,
		`SELECT * FROM wishlist_item WHERE `+fuzzy("item_name")+` ORDER BY created DESC LIMIT 1`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find wishlist match: %w", err)
	}
	return row, nil
}

func (c *Client) UpdateWishlistItem(ctx context.Context, id string, fields map[string]any) (*models.WishlistItem, error) {
	set, vars, err := buildSet(fields, wishlistUpdateColumns)
	if err != nil {
		return nil, fmt.Errorf("update wishlist item: %w", err)
	}
	vars["id"] = bareID(id)
	row, err := queryFirst[models.WishlistItem](ctx, c,
		`UPDATE type::record("wishlist_item", $id) SET `+set+` RETURN AFTER`, vars)
	if err != nil {
		return nil, fmt.Errorf("update wishlist item: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("update wishlist item %s: %w", id, ErrNotFound)
	}
	return row, nil
}

func (c *Client) DeleteWishlistItems(ctx context.Context, id, name string) ([]models.WishlistItem, error) {
	if id != "" {
		rows, err := queryRows[models.WishlistItem](ctx, c,
			`DELETE type::record("wishlist_item", $id) RETURN BEFORE`,
			map[string]any{"id": bareID(id)})
		if err != nil {
			return nil, fmt.Errorf("delete wishlist item by id: %w", err)
		}
		return rows, nil
	}
	rows, err := queryRows[models.WishlistItem](ctx, c,
		`DELETE wishlist_item WHERE `+fuzzy("item_name")+` RETURN BEFORE`,
		map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("delete wishlist items by name: %w", err)
	}
	return rows, nil
}
