// Package extract recovers entity-specific structured fields from an
// utterance. Deterministic regex extraction is preferred; a narrower
// generative call fills in when the regexes come up short. Extraction never
// fails a request: the worst case is an empty value map, and missing
// mandatory fields surface later as executor validation errors.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/timeparse"
)

var (
	workoutRe     = regexp.MustCompile(`(?i)(?:add|log|record|did)\s+(?:(\d+)\s+sets?\s+(?:of\s+)?(\d+)\s+(?:reps?\s+)?)?(.+?)(?:\s+(?:with|at|for|on|today|yesterday)|\s*$)`)
	weightRe      = regexp.MustCompile(`(?i)(\d+)\s*(?:kg|lbs?|pounds?)`)
	stepsRe       = regexp.MustCompile(`(?i)(\d+)\s*steps?`)
	reminderWhen  = regexp.MustCompile(`(?i)(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	reminder24h   = regexp.MustCompile(`(?i)(?:at\s+)?(\d{1,2}:\d{2})\b`)
	reminderName  = regexp.MustCompile(`(?i)(?:remind(?:er)?(?:\s+me)?(?:\s+to)?|set\s+(?:a\s+)?reminder(?:\s+(?:for|to))?)\s+(.+?)(?:\s+(?:at|on|tomorrow|today|\d))`)
	reminderTail  = regexp.MustCompile(`(?i)(?:remind(?:er)?(?:\s+me)?(?:\s+to)?|set\s+(?:a\s+)?reminder(?:\s+(?:for|to))?)\s+(.+)`)
	trailingTime  = regexp.MustCompile(`(?i)\s+(at\s+)?\d{1,2}(:\d{2})?\s*(am|pm)?$`)
	trailingDate  = regexp.MustCompile(`(?i)\s+on\s+\d{1,2}(st|nd|rd|th)?\s+\w+$`)
	trailingRel   = regexp.MustCompile(`(?i)\s+(today|tomorrow)$`)
	shoppingItems = regexp.MustCompile(`(?i)add\s+(.+?)\s+(?:to\s+)?(?:my\s+)?(?:shopping|grocery)`)
	itemSplitRe   = regexp.MustCompile(`\s*(?:,|\s+and\s+|\s*&\s*)\s*`)
	wishItemRe    = regexp.MustCompile(`(?i)add\s+(.+?)\s+(?:to\s+)?(?:my\s+)?wishlist`)
	priceRe       = regexp.MustCompile(`(?i)(?:for|at|price)?\s*(?:₹|\$|rs\.?)?\s*(\d+)`)
	measureRe     = regexp.MustCompile(`(?i)(?:set|update|change|my)\s+(.+?)\s+(?:to|is|=)\s+(\d+(?:\.\d+)?)`)
	recipeRe      = regexp.MustCompile(`(?i)add\s+(.+?)\s+(?:for|to)\s+(breakfast|lunch|dinner|snack)`)
	weekRe        = regexp.MustCompile(`(?i)week\s*(\d+)`)
	dayRe         = regexp.MustCompile(`(?i)day\s*(\d+)`)
	negatedMealRe = regexp.MustCompile(`(?i)didn't|did not|skip|remove`)
)

// Deterministic extracts fields for entity from the utterance using fixed
// regex patterns. The returned map may be empty; it is never nil.
func Deterministic(utterance string, entity models.Entity) map[string]any {
	lower := strings.ToLower(utterance)
	values := map[string]any{}

	switch entity {
	case models.EntityWorkout:
		if m := workoutRe.FindStringSubmatch(utterance); m != nil {
			if m[1] != "" {
				values["sets"] = mustInt(m[1])
			}
			if m[2] != "" {
				values["reps"] = mustInt(m[2])
			}
			if name := strings.TrimSpace(m[3]); name != "" {
				values["workout_name"] = name
			}
		}
		if m := weightRe.FindStringSubmatch(utterance); m != nil {
			values["weights"] = mustInt(m[1])
		}

	case models.EntitySteps:
		if m := stepsRe.FindStringSubmatch(utterance); m != nil {
			values["steps"] = mustInt(m[1])
		}

	case models.EntityReminder:
		if m := reminderWhen.FindStringSubmatch(utterance); m != nil {
			values["reminder_time"] = clockFromParts(m[1], m[2], m[3])
		} else if m := reminder24h.FindStringSubmatch(utterance); m != nil {
			values["reminder_time"] = timeparse.Clock(m[1])
		}
		if m := reminderName.FindStringSubmatch(utterance); m != nil {
			values["reminder_name"] = strings.TrimSpace(m[1])
		} else if m := reminderTail.FindStringSubmatch(utterance); m != nil {
			name := strings.TrimSpace(m[1])
			name = trailingTime.ReplaceAllString(name, "")
			name = trailingDate.ReplaceAllString(name, "")
			name = trailingRel.ReplaceAllString(name, "")
			if name = strings.TrimSpace(name); name != "" {
				values["reminder_name"] = name
			}
		}

	case models.EntityShopping:
		if m := shoppingItems.FindStringSubmatch(utterance); m != nil {
			raw := strings.TrimSpace(m[1])
			if strings.ContainsAny(raw, ",&") || strings.Contains(raw, " and ") {
				var items []string
				for _, part := range itemSplitRe.Split(raw, -1) {
					if part = strings.TrimSpace(part); part != "" {
						items = append(items, part)
					}
				}
				if len(items) > 0 {
					values["items"] = items
				}
			} else {
				values["item_name"] = raw
			}
		}

	case models.EntityWishlist:
		if m := wishItemRe.FindStringSubmatch(utterance); m != nil {
			values["item_name"] = strings.TrimSpace(m[1])
		}
		if m := priceRe.FindStringSubmatch(utterance); m != nil {
			values["price"] = mustInt(m[1])
		}

	case models.EntityMeasurement:
		if m := measureRe.FindStringSubmatch(utterance); m != nil {
			// "change my chest to 40" captures "my chest"; the possessive is
			// not part of the column name.
			name := strings.ToLower(strings.TrimSpace(m[1]))
			name = strings.TrimSpace(strings.TrimPrefix(name, "my "))
			if name != "" {
				values["name"] = strings.ReplaceAll(name, " ", "_")
				values["value"] = mustFloat(m[2])
			}
		}

	case models.EntityDiet:
		var meals []string
		for _, meal := range []string{"Breakfast", "Lunch", "Dinner", "Snack"} {
			if strings.Contains(lower, strings.ToLower(meal)) {
				meals = append(meals, meal)
			}
		}
		switch {
		case len(meals) > 1:
			values["meal_types"] = meals
			values["action"] = "mark_eaten"
		case len(meals) == 1:
			values["meal_type"] = meals[0]
			if negatedMealRe.MatchString(lower) {
				values["action"] = "unmark_eaten"
			} else {
				values["action"] = "mark_eaten"
			}
		}

	case models.EntityRecipe:
		if m := recipeRe.FindStringSubmatch(utterance); m != nil {
			values["food_name"] = strings.TrimSpace(m[1])
			meal := strings.ToLower(m[2])
			values["meal_type"] = strings.ToUpper(meal[:1]) + meal[1:]
		}
		if m := weekRe.FindStringSubmatch(utterance); m != nil {
			values["week"] = mustInt(m[1])
		}
		if m := dayRe.FindStringSubmatch(utterance); m != nil {
			values["day"] = "Day " + m[1]
		}
	}

	return values
}

func clockFromParts(hourStr, minStr, ampm string) string {
	hours := mustInt(hourStr)
	minutes := "00"
	if minStr != "" {
		minutes = minStr
	}
	switch strings.ToLower(ampm) {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	return pad2(hours) + ":" + minutes
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
