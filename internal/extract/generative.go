package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/models"
)

const extractionSystemPrompt = `You extract structured values from user messages for a personal tracking assistant.
Return ONLY a JSON object with the extracted values, no explanation.`

const extractionFieldGuide = `Fields per entity:
- workout: workout_name, sets, reps, weights, day, date
- diet: meal_type, meal_types (array), food_name, calories, action (mark_eaten/unmark_eaten)
- recipe: food_name, week (number), day ("Day 1".."Day 7"), meal_type (Breakfast/Lunch/Snack/Dinner), ingredients, calories
- steps: steps (number), date
- measurement: name (body part), value (number)
- reminder: reminder_name, reminder_time (HH:MM), date
- shopping: item_name, items (array), old_name, new_name, quantity, price
- wishlist: item_name, old_name, new_name, price, category, priority`

// Generative asks the model for entity fields under a narrow schema. The
// response must be a flat JSON object; anything else is an error and the
// caller keeps the deterministic result instead.
func Generative(ctx context.Context, completer llm.Completer, utterance string, intent models.Intent, entity models.Entity) (map[string]any, error) {
	user := fmt.Sprintf("Extract values from this message for a %s action on %s.\nMessage: %q\n\n%s\n\nReturn ONLY valid JSON.",
		intent, entity, utterance, extractionFieldGuide)

	raw, err := completer.Complete(ctx, extractionSystemPrompt, user, llm.CompleteOptions{
		JSONMode:    true,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call: %w", err)
	}

	values := map[string]any{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &values); err != nil {
		return nil, fmt.Errorf("parse extraction output: %w", err)
	}
	return values, nil
}

// Values runs the full extraction strategy: deterministic first, then the
// generative call when the regexes did not recover the entity's identifying
// field. A failed or unparseable generative call falls back to whatever the
// deterministic pass produced. The bool reports whether the generative tier
// contributed. Never returns nil.
func Values(ctx context.Context, completer llm.Completer, logger *slog.Logger, utterance string, intent models.Intent, entity models.Entity) (map[string]any, bool) {
	values := Deterministic(utterance, entity)
	if Sufficient(entity, values) || completer == nil {
		return values, false
	}

	generated, err := Generative(ctx, completer, utterance, intent, entity)
	if err != nil {
		if logger != nil {
			logger.Warn("generative extraction failed, keeping regex result", "entity", entity, "error", err)
		}
		return values, false
	}

	// Deterministic fields win on conflict; the model fills the gaps.
	for k, v := range generated {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	return values, true
}

// Sufficient reports whether the value map already carries the entity's
// mandatory identifying field. Entities without one are always sufficient.
func Sufficient(entity models.Entity, values map[string]any) bool {
	has := func(keys ...string) bool {
		for _, k := range keys {
			if v, ok := values[k]; ok && v != nil {
				return true
			}
		}
		return false
	}

	switch entity {
	case models.EntityWorkout:
		return has("workout_name")
	case models.EntityReminder:
		return has("reminder_name")
	case models.EntityShopping:
		return has("item_name", "items", "old_name")
	case models.EntityWishlist:
		return has("item_name", "old_name")
	case models.EntitySteps:
		return has("steps")
	case models.EntityMeasurement:
		return has("name")
	case models.EntityDiet:
		return has("meal_type", "meal_types", "food_name")
	case models.EntityRecipe:
		return has("food_name")
	}
	return true
}
