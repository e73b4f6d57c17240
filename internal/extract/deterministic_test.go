package extract

import (
	"reflect"
	"testing"

	"github.com/raphaelgruber/isha-go/internal/models"
)

func TestDeterministicWorkout(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      map[string]any
	}{
		{
			"full sets reps weight",
			"did 3 sets of 12 bench press at 60kg",
			map[string]any{"sets": 3, "reps": 12, "workout_name": "bench press", "weights": 60},
		},
		{
			"bare add",
			"add squats",
			map[string]any{"workout_name": "squats"},
		},
		{
			"name stops at preposition",
			"log deadlift with 100kg",
			map[string]any{"workout_name": "deadlift", "weights": 100},
		},
		{
			"no verb no values",
			"my workout was great",
			map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deterministic(tt.utterance, models.EntityWorkout)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Deterministic(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestDeterministicSteps(t *testing.T) {
	got := Deterministic("i walked 5000 steps today", models.EntitySteps)
	if got["steps"] != 5000 {
		t.Errorf("steps = %v, want 5000", got["steps"])
	}

	got = Deterministic("went for a walk", models.EntitySteps)
	if len(got) != 0 {
		t.Errorf("expected empty map without a step count, got %v", got)
	}
}

func TestDeterministicReminder(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		wantName  string
		wantTime  string
	}{
		{"name and pm time", "remind me to call mom at 5pm", "call mom", "17:00"},
		{"time with minutes", "remind me to take meds at 8:30am", "take meds", "08:30"},
		{"set a reminder phrasing", "set a reminder for drink water tomorrow", "drink water", ""},
		{"trailing only name", "remind me to stretch", "stretch", ""},
		{"midnight", "remind me to sleep at 12am", "sleep", "00:00"},
		{"bare 24h time", "remind me to call mom at 18:30", "call mom", "18:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deterministic(tt.utterance, models.EntityReminder)
			if got["reminder_name"] != tt.wantName {
				t.Errorf("reminder_name = %v, want %q", got["reminder_name"], tt.wantName)
			}
			if tt.wantTime == "" {
				if _, ok := got["reminder_time"]; ok {
					t.Errorf("unexpected reminder_time %v", got["reminder_time"])
				}
			} else if got["reminder_time"] != tt.wantTime {
				t.Errorf("reminder_time = %v, want %q", got["reminder_time"], tt.wantTime)
			}
		})
	}
}

func TestDeterministicShopping(t *testing.T) {
	got := Deterministic("add milk, eggs and bread to my shopping list", models.EntityShopping)
	items, _ := got["items"].([]string)
	if !reflect.DeepEqual(items, []string{"milk", "eggs", "bread"}) {
		t.Errorf("items = %v, want [milk eggs bread]", items)
	}

	got = Deterministic("add milk to shopping list", models.EntityShopping)
	if got["item_name"] != "milk" {
		t.Errorf("item_name = %v, want milk", got["item_name"])
	}
	if _, ok := got["items"]; ok {
		t.Error("single item should not produce an items list")
	}
}

func TestDeterministicWishlist(t *testing.T) {
	got := Deterministic("add running shoes to my wishlist for 5000", models.EntityWishlist)
	if got["item_name"] != "running shoes" {
		t.Errorf("item_name = %v, want running shoes", got["item_name"])
	}
	if got["price"] != 5000 {
		t.Errorf("price = %v, want 5000", got["price"])
	}
}

func TestDeterministicMeasurement(t *testing.T) {
	got := Deterministic("set left bicep to 14.5", models.EntityMeasurement)
	if got["name"] != "left_bicep" {
		t.Errorf("name = %v, want left_bicep", got["name"])
	}
	if got["value"] != 14.5 {
		t.Errorf("value = %v, want 14.5", got["value"])
	}

	got = Deterministic("my weight is 70", models.EntityMeasurement)
	if got["name"] != "weight" || got["value"] != 70.0 {
		t.Errorf("got %v, want weight=70", got)
	}
}

func TestDeterministicMeasurementPossessive(t *testing.T) {
	got := Deterministic("Change my chest to 40", models.EntityMeasurement)
	if got["name"] != "chest" {
		t.Errorf("name = %v, want chest", got["name"])
	}
	if got["value"] != 40.0 {
		t.Errorf("value = %v, want 40", got["value"])
	}

	got = Deterministic("update my left bicep to 14.5", models.EntityMeasurement)
	if got["name"] != "left_bicep" || got["value"] != 14.5 {
		t.Errorf("got %v, want left_bicep=14.5", got)
	}
}

func TestDeterministicDiet(t *testing.T) {
	got := Deterministic("i had lunch and dinner", models.EntityDiet)
	meals, _ := got["meal_types"].([]string)
	if !reflect.DeepEqual(meals, []string{"Lunch", "Dinner"}) {
		t.Errorf("meal_types = %v, want [Lunch Dinner]", meals)
	}
	if got["action"] != "mark_eaten" {
		t.Errorf("action = %v, want mark_eaten", got["action"])
	}

	got = Deterministic("i didn't have breakfast", models.EntityDiet)
	if got["meal_type"] != "Breakfast" || got["action"] != "unmark_eaten" {
		t.Errorf("got %v, want Breakfast unmark_eaten", got)
	}

	got = Deterministic("i had lunch", models.EntityDiet)
	if got["meal_type"] != "Lunch" || got["action"] != "mark_eaten" {
		t.Errorf("got %v, want Lunch mark_eaten", got)
	}
}

func TestDeterministicRecipe(t *testing.T) {
	got := Deterministic("add corn peas masala for dinner on week 1 day 2", models.EntityRecipe)
	want := map[string]any{
		"food_name": "corn peas masala",
		"meal_type": "Dinner",
		"week":      1,
		"day":       "Day 2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDeterministicNeverNil(t *testing.T) {
	got := Deterministic("hello", models.EntityGeneral)
	if got == nil {
		t.Fatal("Deterministic must never return nil")
	}
	if len(got) != 0 {
		t.Errorf("expected empty map for general entity, got %v", got)
	}
}
