package models

// Row structs mirror the tracker tables. Field tags are the SurrealDB column
// names; zero values are omitted on insert so the schema defaults apply.

// Workout is one logged exercise. Updates intentionally append a new row
// rather than editing history.
type Workout struct {
	ID          string   `json:"id,omitempty"`
	WorkoutName string   `json:"workout_name"`
	Sets        *int     `json:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	Weights     *float64 `json:"weights,omitempty"`
	Day         string   `json:"day"`
	Date        string   `json:"date"`
}

// DietLog records a meal eaten on a given plan slot. One row per
// (week, day, meal_type); the executor enforces the uniqueness.
type DietLog struct {
	ID       string `json:"id,omitempty"`
	FoodName string `json:"food_name"`
	MealType string `json:"meal_type"`
	Week     int    `json:"week"`
	Day      string `json:"day"`
	Calories int    `json:"calories"`
	RecipeID string `json:"recipe_id,omitempty"`
}

// Recipe is a planned meal in the rotating meal plan.
type Recipe struct {
	ID             string   `json:"id,omitempty"`
	Week           int      `json:"week"`
	Day            string   `json:"day"`
	DayOfMonth     int      `json:"day_of_month,omitempty"`
	MealType       string   `json:"meal_type"`
	FoodName       string   `json:"food_name"`
	Ingredients    []string `json:"ingredients,omitempty"`
	Servings       int      `json:"servings,omitempty"`
	Instructions   string   `json:"instructions,omitempty"`
	ApproxCalories *int     `json:"approx_calories,omitempty"`
	Protein        *float64 `json:"protein,omitempty"`
	Fat            *float64 `json:"fat,omitempty"`
	Carbs          *float64 `json:"carbs,omitempty"`
}

// Steps is a daily step total, keyed by date.
type Steps struct {
	ID    string `json:"id,omitempty"`
	Day   string `json:"day"`
	Steps int    `json:"steps"`
	Date  string `json:"date"`
}

// Measurement is one body-measurement snapshot. Individual columns are
// updated in place on the latest row; nil means not recorded.
type Measurement struct {
	ID               string   `json:"id,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	Neck             *float64 `json:"neck,omitempty"`
	Chest            *float64 `json:"chest,omitempty"`
	Waist            *float64 `json:"waist,omitempty"`
	Stomach          *float64 `json:"stomach,omitempty"`
	ShoulderWidth    *float64 `json:"shoulder_width,omitempty"`
	LeftBicep        *float64 `json:"left_bicep,omitempty"`
	RightBicep       *float64 `json:"right_bicep,omitempty"`
	LeftForearm      *float64 `json:"left_forearm,omitempty"`
	RightForearm     *float64 `json:"right_forearm,omitempty"`
	LeftLeg          *float64 `json:"left_leg,omitempty"`
	RightLeg         *float64 `json:"right_leg,omitempty"`
	LeftCalf         *float64 `json:"left_calf,omitempty"`
	RightCalf        *float64 `json:"right_calf,omitempty"`
	BenchMax         *float64 `json:"bench_max,omitempty"`
	OverheadPressMax *float64 `json:"overhead_press_max,omitempty"`
	RowsMax          *float64 `json:"rows_max,omitempty"`
	SquatsMax        *float64 `json:"squats_max,omitempty"`
	DeadliftMax      *float64 `json:"deadlift_max,omitempty"`
}

// Reminder is a dated alert. Enabled defaults to true on insert.
type Reminder struct {
	ID           string `json:"id,omitempty"`
	ReminderName string `json:"reminder_name"`
	ReminderTime string `json:"reminder_time"`
	Day          string `json:"day"`
	Date         string `json:"date"`
	Enabled      *bool  `json:"enabled,omitempty"`
}

// ShoppingItem is one grocery entry.
type ShoppingItem struct {
	ID          string  `json:"id,omitempty"`
	GroceryName string  `json:"grocery_name"`
	Amount      string  `json:"amount"`
	PriceRupees float64 `json:"price_rupees"`
	Day         string  `json:"day"`
	Date        string  `json:"date"`
}

// WishlistItem is something the user wants to buy eventually.
type WishlistItem struct {
	ID             string   `json:"id,omitempty"`
	ItemName       string   `json:"item_name"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
	Priority       string   `json:"priority,omitempty"`
}
