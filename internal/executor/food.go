package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/timeparse"
)

// --- Diet logs ------------------------------------------------------------

// normalizeMealType folds free-text meal names onto the plan's four slots.
func normalizeMealType(meal string) string {
	lower := strings.ToLower(meal)
	switch {
	case strings.Contains(lower, "break"):
		return "Breakfast"
	case strings.Contains(lower, "lunch"):
		return "Lunch"
	case strings.Contains(lower, "snack"):
		return "Snack"
	case strings.Contains(lower, "dinner"):
		return "Dinner"
	}
	if meal == "" {
		return meal
	}
	return strings.ToUpper(meal[:1]) + meal[1:]
}

func (e *Executor) addDietLog(ctx context.Context, values map[string]any) models.ActionResult {
	if firstString(values, "action") == "mark_eaten" {
		return e.markMealsEaten(ctx, values)
	}

	now := e.now()
	food := firstString(values, "food_name", "name", "food")
	if food == "" {
		food = "Food"
	}
	meal := firstString(values, "meal_type", "meal")
	if meal == "" {
		meal = "snack"
	}
	calories, _ := firstInt(values, "calories")
	week, ok := firstInt(values, "week")
	if !ok {
		week = timeparse.PlanWeek(now)
	}
	day := firstString(values, "day")
	if day == "" {
		day = now.Weekday().String()
	}

	row, err := e.store.InsertDietLog(ctx, models.DietLog{
		FoodName: food,
		MealType: meal,
		Week:     week,
		Day:      day,
		Calories: calories,
		RecipeID: firstString(values, "recipe_id"),
	})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Logged %s (%d cal)", food, calories),
	}
}

// markMealsEaten logs today's plan slot for each named meal. Already-logged
// meals are skipped, never duplicated; when a recipe is planned for today's
// day-of-month and meal type, its name, calories, and id are carried over.
func (e *Executor) markMealsEaten(ctx context.Context, values map[string]any) models.ActionResult {
	now := e.now()
	week := timeparse.PlanWeek(now)
	day := timeparse.PlanDay(now)
	dayOfMonth := now.Day()

	mealTypes := stringList(values, "meal_types")
	if len(mealTypes) == 0 {
		if single := firstString(values, "meal_type"); single != "" {
			mealTypes = []string{single}
		}
	}
	if len(mealTypes) == 0 {
		return models.Failure("Please specify which meal(s) you had (breakfast, lunch, snack, dinner)")
	}
	for i, m := range mealTypes {
		mealTypes[i] = normalizeMealType(m)
	}

	var logged []models.DietLog
	var alreadyLogged []string

	for _, meal := range mealTypes {
		existing, err := e.store.FindDietLogBySlot(ctx, meal, week, day)
		if err != nil {
			return models.Failure(err.Error())
		}
		if existing != nil {
			alreadyLogged = append(alreadyLogged, meal)
			continue
		}

		recipe, err := e.store.FindRecipeForDay(ctx, dayOfMonth, meal)
		if err != nil {
			return models.Failure(err.Error())
		}

		entry := models.DietLog{FoodName: meal, MealType: meal, Week: week, Day: day}
		if recipe != nil {
			entry.FoodName = recipe.FoodName
			entry.RecipeID = recipe.ID
			if recipe.ApproxCalories != nil {
				entry.Calories = *recipe.ApproxCalories
			}
		}

		row, err := e.store.InsertDietLog(ctx, entry)
		if err != nil {
			return models.Failure(err.Error())
		}
		logged = append(logged, *row)
	}

	if len(logged) == 0 && len(alreadyLogged) > 0 {
		return models.ActionResult{
			Success: true,
			Action:  models.ActionSkipped,
			Message: fmt.Sprintf("%s already marked as eaten", strings.Join(alreadyLogged, ", ")),
		}
	}

	marked := make([]string, len(logged))
	for i, row := range logged {
		marked[i] = row.MealType
	}
	message := fmt.Sprintf("Marked %s as eaten!", strings.Join(marked, ", "))
	if len(alreadyLogged) > 0 {
		message += fmt.Sprintf(" (%s was already logged)", strings.Join(alreadyLogged, ", "))
	}

	return models.ActionResult{Success: true, Action: models.ActionAdded, Data: logged, Message: message}
}

func (e *Executor) deleteDietLog(ctx context.Context, values map[string]any) models.ActionResult {
	meal := firstString(values, "meal_type")
	if firstString(values, "action") == "unmark_eaten" && meal != "" {
		now := e.now()
		meal = normalizeMealType(meal)
		rows, err := e.store.DeleteDietLogBySlot(ctx, meal, timeparse.PlanWeek(now), timeparse.PlanDay(now))
		if err != nil {
			return models.Failure(err.Error())
		}
		if len(rows) == 0 {
			return models.Failure(fmt.Sprintf("%s was not marked as eaten", meal))
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionDeleted,
			Data:    rows,
			Message: fmt.Sprintf("Unmarked %s as eaten", meal),
		}
	}

	id := firstString(values, "id")
	food := firstString(values, "food_name", "name")
	if id == "" && food == "" {
		return models.Failure("No matching diet log found")
	}

	rows, err := e.store.DeleteDietLogs(ctx, id, food)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching diet log found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: fmt.Sprintf("Deleted %d diet log(s)", len(rows)),
	}
}

// --- Recipes --------------------------------------------------------------

func (e *Executor) addRecipe(ctx context.Context, values map[string]any) models.ActionResult {
	values = unwrap(values, "recipe")
	food := firstString(values, "food_name", "name", "recipe_name")
	if food == "" {
		return models.Failure(`Please tell me the recipe name. Example: "add chicken salad recipe"`)
	}

	week, ok := firstInt(values, "week")
	if !ok {
		week = 1
	}
	day := firstString(values, "day")
	if day == "" {
		day = e.now().Weekday().String()
	}
	meal := firstString(values, "meal_type")
	if meal == "" {
		meal = "Snack"
	}
	servings, ok := firstInt(values, "servings")
	if !ok {
		servings = 1
	}

	r := models.Recipe{
		Week:           week,
		Day:            day,
		MealType:       meal,
		FoodName:       food,
		Ingredients:    stringList(values, "ingredients"),
		Servings:       servings,
		Instructions:   firstString(values, "instructions"),
		ApproxCalories: intPtr(values, "approx_calories", "calories"),
		Protein:        floatPtr(values, "protein"),
		Fat:            floatPtr(values, "fat"),
		Carbs:          floatPtr(values, "carbs"),
	}
	if dom, ok := firstInt(values, "day_of_month"); ok {
		r.DayOfMonth = dom
	}

	row, err := e.store.InsertRecipe(ctx, r)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Added recipe: %s", food),
	}
}

// updateRecipe targets the most recently created recipe whose name matches.
func (e *Executor) updateRecipe(ctx context.Context, values map[string]any) models.ActionResult {
	food := firstString(values, "food_name", "name", "recipe_name")
	if food == "" {
		return models.Failure("Recipe name (food_name) is required to identify which recipe to update")
	}

	existing, err := e.store.FindLatestRecipeMatch(ctx, food)
	if err != nil {
		return models.Failure(err.Error())
	}
	if existing == nil {
		return models.Failure(fmt.Sprintf("No recipe found matching: %s", food))
	}

	fields := map[string]any{}
	if newName := firstString(values, "new_name"); newName != "" {
		fields["food_name"] = newName
	}
	if week, ok := firstInt(values, "week"); ok {
		fields["week"] = week
	}
	if day := firstString(values, "day"); day != "" {
		fields["day"] = day
	}
	if meal := firstString(values, "meal_type"); meal != "" {
		fields["meal_type"] = meal
	}
	if ingredients := stringList(values, "ingredients"); ingredients != nil {
		fields["ingredients"] = ingredients
	}
	if servings, ok := firstInt(values, "servings"); ok {
		fields["servings"] = servings
	}
	if instructions := firstString(values, "instructions"); instructions != "" {
		fields["instructions"] = instructions
	}
	if cal, ok := firstInt(values, "approx_calories", "calories"); ok {
		fields["approx_calories"] = cal
	}
	if protein, ok := firstNumber(values, "protein"); ok {
		fields["protein"] = protein
	}
	if fat, ok := firstNumber(values, "fat"); ok {
		fields["fat"] = fat
	}
	if carbs, ok := firstNumber(values, "carbs"); ok {
		fields["carbs"] = carbs
	}

	if len(fields) == 0 {
		return models.Failure("No fields to update provided")
	}

	row, err := e.store.UpdateRecipe(ctx, existing.ID, fields)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: fmt.Sprintf("Updated recipe: %s", food),
	}
}

func (e *Executor) deleteRecipe(ctx context.Context, values map[string]any) models.ActionResult {
	id := firstString(values, "id")
	name := firstString(values, "food_name", "name", "recipe_name")
	if id == "" && name == "" {
		return models.Failure("Recipe name or ID is required to delete")
	}

	rows, err := e.store.DeleteRecipes(ctx, id, name)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching recipe found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: fmt.Sprintf("Deleted %d recipe(s)", len(rows)),
	}
}
