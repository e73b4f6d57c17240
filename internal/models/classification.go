// Package models defines data structures shared across the isha command pipeline.
package models

// Intent is the action the user asked for.
type Intent string

// The closed set of intents. Classifier output outside this set is discarded.
const (
	IntentQuery  Intent = "query"
	IntentAdd    Intent = "add"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
	IntentChat   Intent = "chat"
)

// Entity is the data domain an utterance refers to.
type Entity string

// The closed set of entities, one per tracker table (plus analytics/general,
// which are read-only).
const (
	EntityWorkout     Entity = "workout"
	EntityDiet        Entity = "diet"
	EntityRecipe      Entity = "recipe"
	EntityReminder    Entity = "reminder"
	EntitySteps       Entity = "steps"
	EntityMeasurement Entity = "measurement"
	EntityShopping    Entity = "shopping"
	EntityWishlist    Entity = "wishlist"
	EntityAnalytics   Entity = "analytics"
	EntityGeneral     Entity = "general"
	EntityBook        Entity = "book"
	EntityAnime       Entity = "anime"
)

// ValidIntent reports whether s is a member of the closed intent set.
func ValidIntent(s string) bool {
	switch Intent(s) {
	case IntentQuery, IntentAdd, IntentUpdate, IntentDelete, IntentChat:
		return true
	}
	return false
}

// ValidEntity reports whether s is a member of the closed entity set.
func ValidEntity(s string) bool {
	switch Entity(s) {
	case EntityWorkout, EntityDiet, EntityRecipe, EntityReminder, EntitySteps,
		EntityMeasurement, EntityShopping, EntityWishlist, EntityAnalytics,
		EntityGeneral, EntityBook, EntityAnime:
		return true
	}
	return false
}

// Method records which cascade tier produced the final classification.
type Method string

const (
	MethodSemantic      Method = "semantic"
	MethodSemanticLLM   Method = "semantic+llm"
	MethodSemanticRegex Method = "semantic+regex"
	MethodLLM           Method = "llm"
	MethodFallback      Method = "fallback"
)

// Classification is the typed result of interpreting one utterance.
// It is produced once per request and never persisted.
type Classification struct {
	Intent          Intent         `json:"intent"`
	Entity          Entity         `json:"entity"`
	ExtractedValues map[string]any `json:"extracted_values"`
	TimeReference   string         `json:"time_reference,omitempty"`
	OriginalQuery   string         `json:"original_query"`
	Confidence      float64        `json:"confidence"`
	Method          Method         `json:"method"`
}

// Mutating reports whether the classified intent writes to the store.
// Query and chat intents never reach a mutation handler.
func (c Classification) Mutating() bool {
	switch c.Intent {
	case IntentAdd, IntentUpdate, IntentDelete:
		return true
	}
	return false
}

// Action describes what an executed handler did.
type Action string

const (
	ActionAdded   Action = "added"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionQuery   Action = "query"
	ActionNone    Action = "none"
)

// ActionResult is the outcome of executing a classification. Handler-level
// failures are reported here, not as Go errors.
type ActionResult struct {
	Success bool   `json:"success"`
	Action  Action `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failure builds a failed result with a corrective hint for the user.
func Failure(msg string) ActionResult {
	return ActionResult{Success: false, Error: msg}
}
