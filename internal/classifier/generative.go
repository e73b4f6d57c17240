package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/models"
)

// classificationPrompt is the fixed instruction for the generative tier:
// intent/entity definitions plus worked examples covering every entity.
const classificationPrompt = `You are an intent classifier for a fitness and health tracking assistant called ISHA.
Analyze the user message and extract the intent, the entity, and any specific values mentioned.

INTENTS:
- query: user wants to know/see/check information (e.g. "What did I eat today?", "Show my workouts")
- add: user wants to add/create/log something (e.g. "Add 5000 steps", "Remind me to...", "Add milk to shopping list")
- update: user wants to modify/change/edit something (e.g. "Change my weight to 70kg")
- delete: user wants to remove/delete something (e.g. "Delete today's workout")
- chat: general conversation, greetings, questions about the assistant

ENTITIES:
- workout: exercise, gym, training, push-ups, squats, bench press, running
- diet: food logs, meals eaten, calories consumed, breakfast, lunch, dinner
- recipe: food recipes, meal plans, "week X day Y", cooking instructions
- reminder: alerts, notifications, "remind me", "set a reminder"
- steps: step count, walking, distance
- measurement: body measurements, weight, height, BMI, lift maxes
- shopping: shopping list, groceries to buy
- wishlist: items the user wants to buy eventually
- analytics: calories burnt, progress, daily summaries, macros
- general: unclear or conversational
- book: reading list, books, pages, chapters
- anime: anime watchlist, episodes, seasons

Extract all relevant values:
- workout: workout_name (REQUIRED), sets, reps, weights, day, date
- reminder: reminder_name (REQUIRED), reminder_time (HH:MM), date
- shopping: item_name or items (REQUIRED), quantity
- wishlist: item_name (REQUIRED), price, description
- diet: meal_type or meal_types, action (mark_eaten/unmark_eaten)
- steps: steps (REQUIRED, number), date
- recipe: food_name (REQUIRED), week (1-5), day ("Day 1".."Day 7"), meal_type (Breakfast/Lunch/Snack/Dinner), ingredients, calories
- measurement: name (REQUIRED, body part), value (REQUIRED for add/update, number)

Respond ONLY with valid JSON in this exact format:
{
  "intent": "query|add|update|delete|chat",
  "entity": "workout|diet|recipe|reminder|steps|measurement|shopping|wishlist|analytics|general|book|anime",
  "details": {
    "extracted_values": {},
    "time_reference": null,
    "original_query": ""
  },
  "confidence": 0.0
}

Examples:
User: "What workouts did I do this week?"
{"intent": "query", "entity": "workout", "details": {"extracted_values": {}, "time_reference": "this week", "original_query": "What workouts did I do this week?"}, "confidence": 0.95}

User: "I did 3 sets of 12 bench press at 60kg"
{"intent": "add", "entity": "workout", "details": {"extracted_values": {"workout_name": "bench press", "sets": 3, "reps": 12, "weights": 60}, "time_reference": "today", "original_query": "I did 3 sets of 12 bench press at 60kg"}, "confidence": 0.95}

User: "Remind me to drink water at 3pm"
{"intent": "add", "entity": "reminder", "details": {"extracted_values": {"reminder_name": "drink water", "reminder_time": "15:00"}, "time_reference": "today", "original_query": "Remind me to drink water at 3pm"}, "confidence": 0.96}

User: "Add milk and eggs to my shopping list"
{"intent": "add", "entity": "shopping", "details": {"extracted_values": {"items": ["milk", "eggs"]}, "time_reference": null, "original_query": "Add milk and eggs to my shopping list"}, "confidence": 0.97}

User: "Change my shoulder to 48"
{"intent": "update", "entity": "measurement", "details": {"extracted_values": {"name": "shoulder", "value": 48}, "time_reference": null, "original_query": "Change my shoulder to 48"}, "confidence": 0.95}

User: "I had lunch and dinner"
{"intent": "add", "entity": "diet", "details": {"extracted_values": {"meal_types": ["Lunch", "Dinner"], "action": "mark_eaten"}, "time_reference": "today", "original_query": "I had lunch and dinner"}, "confidence": 0.96}

User: "Add corn peas masala on week 1 day 2 for dinner"
{"intent": "add", "entity": "recipe", "details": {"extracted_values": {"food_name": "corn peas masala", "week": 1, "day": "Day 2", "meal_type": "Dinner"}, "time_reference": null, "original_query": "Add corn peas masala on week 1 day 2 for dinner"}, "confidence": 0.96}

User: "Hey, how are you?"
{"intent": "chat", "entity": "general", "details": {"extracted_values": {}, "time_reference": null, "original_query": "Hey, how are you?"}, "confidence": 0.99}`

type llmClassification struct {
	Intent  string `json:"intent"`
	Entity  string `json:"entity"`
	Details struct {
		ExtractedValues map[string]any `json:"extracted_values"`
		TimeReference   *string        `json:"time_reference"`
		OriginalQuery   string         `json:"original_query"`
	} `json:"details"`
	Confidence float64 `json:"confidence"`
}

// classifyWithLLM sends the utterance to the model in JSON mode and parses
// the result. Out-of-domain intents or entities are rejected here so the
// caller falls through to the deterministic tier; there is no retry.
func classifyWithLLM(ctx context.Context, completer llm.Completer, utterance string) (*models.Classification, error) {
	raw, err := completer.Complete(ctx, classificationPrompt, utterance, llm.CompleteOptions{
		JSONMode:    true,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("classification call: %w", err)
	}

	var parsed llmClassification
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse classification output: %w", err)
	}

	intent := strings.ToLower(parsed.Intent)
	entity := strings.ToLower(parsed.Entity)
	if !models.ValidIntent(intent) {
		return nil, fmt.Errorf("invalid intent %q in model output", parsed.Intent)
	}
	if !models.ValidEntity(entity) {
		return nil, fmt.Errorf("invalid entity %q in model output", parsed.Entity)
	}

	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	values := parsed.Details.ExtractedValues
	if values == nil {
		values = map[string]any{}
	}
	timeRef := ""
	if parsed.Details.TimeReference != nil {
		timeRef = *parsed.Details.TimeReference
	}

	return &models.Classification{
		Intent:          models.Intent(intent),
		Entity:          models.Entity(entity),
		ExtractedValues: values,
		TimeReference:   timeRef,
		OriginalQuery:   utterance,
		Confidence:      confidence,
		Method:          models.MethodLLM,
	}, nil
}
