package classifier

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/timeparse"
)

// fallbackConfidence is the fixed low score reported by the regex tier, so
// downstream consumers can tell a last-resort guess from a real match.
const fallbackConfidence = 0.6

// Entity detection patterns. Order is load-bearing: "calories burnt" must be
// checked before the generic diet keywords (it belongs to analytics), and
// "today's <entity>" phrasing before the generic entity keyword sets.
var (
	caloriesBurntRe  = regexp.MustCompile(`calorie.*(burn|burnt)|burn.*calorie|(how\s+many|what).*(burn|burnt)`)
	todaysWorkoutRe  = regexp.MustCompile(`today'?s?\s+(workout|exercise)`)
	todaysDietRe     = regexp.MustCompile(`today'?s?\s+(meal|food|diet)`)
	todaysStatsRe    = regexp.MustCompile(`today'?s?\s+(analytic|calorie|macro|burnt|summary|stats)`)
	todaysReminderRe = regexp.MustCompile(`today'?s?\s+reminder`)
	recipeEntityRe   = regexp.MustCompile(`week\s*\d+\s*day\s*\d+|recipe|recipes|(for|to)\s+(breakfast|lunch|dinner|snack)`)
	reminderEntityRe = regexp.MustCompile(`remind|reminder|alert|notify`)
	workoutEntityRe  = regexp.MustCompile(`workout|exercise|gym|training|lift|push.?up|pull.?up|squat|bench|deadlift|curl`)
	statsEntityRe    = regexp.MustCompile(`analytic|stats|summary|progress|macro`)
	dietEntityRe     = regexp.MustCompile(`diet|meal|food|eat|ate|calories\s*(consumed|eaten|intake)|breakfast|lunch|dinner|snack`)
	stepsEntityRe    = regexp.MustCompile(`step|walk|walking|distance`)
	measureEntityRe  = regexp.MustCompile(`weight|height|measure|bmi|body|neck|bicep|forearm|waist|chest|shoulder|calf|leg|stomach`)
	shoppingEntityRe = regexp.MustCompile(`shop|grocery|shopping.?list`)
	wishlistEntityRe = regexp.MustCompile(`wish|wishlist`)
	bookEntityRe     = regexp.MustCompile(`book|read|reading|page|chapter|author`)
	animeEntityRe    = regexp.MustCompile(`anime|manga|watch|episode|season`)
)

// Intent patterns.
var (
	todaysQueryRe     = regexp.MustCompile(`today'?s?\s+(workout|meal|food|diet|analytic|reminder|calorie|macro)`)
	reminderAddRe     = regexp.MustCompile(`set|add|create|remind\s*me|new\s*reminder`)
	reminderUpdateRe  = regexp.MustCompile(`update|change|modify|edit|move|reschedule`)
	reminderDeleteRe  = regexp.MustCompile(`delete|remove|cancel|clear`)
	reminderQueryRe   = regexp.MustCompile(`show|what|list|get|display`)
	queryPrefixRe     = regexp.MustCompile(`^(show|what|how many|list|get|display|tell me|check)`)
	addPrefixRe       = regexp.MustCompile(`^(add|log|record|create|i (did|ate|walked|ran|weigh))`)
	updatePrefixRe    = regexp.MustCompile(`^(update|change|modify|edit|set)`)
	deletePrefixRe    = regexp.MustCompile(`^(delete|remove|cancel|clear)`)
	numberRe          = regexp.MustCompile(`\d+(\.\d+)?`)
	fallbackDayMonth  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)`)
	fallbackMonthDay  = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\s+(\d{1,2})(?:st|nd|rd|th)?`)
	fallbackClockRe   = regexp.MustCompile(`(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	fallbackNameRe    = regexp.MustCompile(`(?:remind(?:er)?(?:\s+me)?(?:\s+to)?|set\s+(?:a\s+)?reminder(?:\s+(?:for|to))?)\s+(.+?)(?:\s+(?:at|on|tomorrow|today|\d))`)
	fallbackNameAltRe = regexp.MustCompile(`(?:remind(?:er)?(?:\s+me)?(?:\s+to)?|set\s+(?:a\s+)?reminder(?:\s+(?:for|to))?)\s+(.+)`)
	nameTrailTimeRe   = regexp.MustCompile(`\s+(at\s+)?\d{1,2}(:\d{2})?\s*(am|pm)?$`)
	nameTrailDateRe   = regexp.MustCompile(`\s+on\s+\d{1,2}(st|nd|rd|th)?\s+\w+$`)
	nameTrailRelRe    = regexp.MustCompile(`\s+(today|tomorrow)$`)
)

// measurementParts are checked by substring in fallback extraction, longest
// first so "left bicep" wins over "bicep"-bearing column names.
var measurementParts = []string{
	"left bicep", "right bicep", "left forearm", "right forearm",
	"left leg", "right leg", "left calf", "right calf",
	"leftbicep", "rightbicep", "weight", "height", "neck", "chest",
	"waist", "stomach", "shoulder",
}

// fallbackClassify is the last cascade tier: a pure regex/keyword pass over
// the lower-cased utterance. It always produces an answer, flagged with
// MethodFallback and a fixed low confidence.
func fallbackClassify(utterance string, now time.Time) models.Classification {
	lower := strings.ToLower(utterance)

	entity := detectEntity(lower)
	intent := detectIntent(lower, entity)
	values := fallbackValues(lower, entity, now)

	return models.Classification{
		Intent:          intent,
		Entity:          entity,
		ExtractedValues: values,
		OriginalQuery:   utterance,
		Confidence:      fallbackConfidence,
		Method:          models.MethodFallback,
	}
}

func detectEntity(lower string) models.Entity {
	switch {
	case caloriesBurntRe.MatchString(lower):
		return models.EntityAnalytics
	case todaysWorkoutRe.MatchString(lower):
		return models.EntityWorkout
	case todaysDietRe.MatchString(lower):
		return models.EntityDiet
	case todaysStatsRe.MatchString(lower):
		return models.EntityAnalytics
	case todaysReminderRe.MatchString(lower):
		return models.EntityReminder
	case recipeEntityRe.MatchString(lower):
		return models.EntityRecipe
	case reminderEntityRe.MatchString(lower):
		return models.EntityReminder
	case workoutEntityRe.MatchString(lower):
		return models.EntityWorkout
	case statsEntityRe.MatchString(lower):
		return models.EntityAnalytics
	case dietEntityRe.MatchString(lower):
		return models.EntityDiet
	case stepsEntityRe.MatchString(lower):
		return models.EntitySteps
	case measureEntityRe.MatchString(lower):
		return models.EntityMeasurement
	case shoppingEntityRe.MatchString(lower):
		return models.EntityShopping
	case wishlistEntityRe.MatchString(lower):
		return models.EntityWishlist
	case bookEntityRe.MatchString(lower):
		return models.EntityBook
	case animeEntityRe.MatchString(lower):
		return models.EntityAnime
	default:
		return models.EntityGeneral
	}
}

func detectIntent(lower string, entity models.Entity) models.Intent {
	// "today's X" phrasing is almost always a query, whatever the verb.
	if todaysQueryRe.MatchString(lower) {
		return models.IntentQuery
	}

	// Reminders get their own ladder; bare mentions default to add
	// ("remind me to..." carries no leading verb).
	if entity == models.EntityReminder {
		switch {
		case reminderAddRe.MatchString(lower):
			return models.IntentAdd
		case reminderUpdateRe.MatchString(lower):
			return models.IntentUpdate
		case reminderDeleteRe.MatchString(lower):
			return models.IntentDelete
		case reminderQueryRe.MatchString(lower):
			return models.IntentQuery
		default:
			return models.IntentAdd
		}
	}

	switch {
	case queryPrefixRe.MatchString(lower):
		return models.IntentQuery
	case addPrefixRe.MatchString(lower):
		return models.IntentAdd
	case updatePrefixRe.MatchString(lower):
		return models.IntentUpdate
	case deletePrefixRe.MatchString(lower):
		return models.IntentDelete
	default:
		return models.IntentChat
	}
}

func fallbackValues(lower string, entity models.Entity, now time.Time) map[string]any {
	values := map[string]any{}

	if entity == models.EntityReminder {
		if m := fallbackNameRe.FindStringSubmatch(lower); m != nil {
			values["reminder_name"] = strings.TrimSpace(m[1])
		} else if m := fallbackNameAltRe.FindStringSubmatch(lower); m != nil {
			name := strings.TrimSpace(m[1])
			name = nameTrailTimeRe.ReplaceAllString(name, "")
			name = nameTrailDateRe.ReplaceAllString(name, "")
			name = nameTrailRelRe.ReplaceAllString(name, "")
			if name = strings.TrimSpace(name); name != "" {
				values["reminder_name"] = name
			}
		}

		if m := fallbackClockRe.FindStringSubmatch(lower); m != nil {
			ref := m[1]
			if m[2] != "" {
				ref += ":" + m[2]
			}
			values["reminder_time"] = timeparse.Clock(ref + m[3])
		}

		switch {
		case fallbackDayMonth.MatchString(lower):
			values["date"] = timeparse.Date(fallbackDayMonth.FindString(lower), now)
		case fallbackMonthDay.MatchString(lower):
			values["date"] = timeparse.Date(fallbackMonthDay.FindString(lower), now)
		case strings.Contains(lower, "tomorrow"):
			values["date"] = timeparse.Date("tomorrow", now)
		case strings.Contains(lower, "today"):
			values["date"] = timeparse.Date("today", now)
		}
		return values
	}

	numbers := numberRe.FindAllString(lower, -1)
	if len(numbers) == 0 {
		return values
	}

	switch entity {
	case models.EntitySteps:
		if n, err := strconv.Atoi(numbers[0]); err == nil {
			values["steps"] = n
		}
	case models.EntityMeasurement:
		value, _ := strconv.ParseFloat(numbers[0], 64)
		for _, part := range measurementParts {
			if strings.Contains(lower, part) {
				values["name"] = strings.ReplaceAll(part, " ", "_")
				values["value"] = value
				break
			}
		}
		if _, ok := values["name"]; !ok {
			// No recognizable body part; assume the number is a weight.
			values["weight"] = value
		}
	}
	return values
}
