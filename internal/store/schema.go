package store

// trackerTables lists every table the schema defines, in wipe order.
var trackerTables = []string{
	"workout", "diet_log", "food_recipe", "steps",
	"body_measurement", "reminder", "shopping_item", "wishlist_item",
}

// SchemaSQL contains the tracker schema. Every table carries a created
// timestamp so "most recent match" ordering is well defined.
const SchemaSQL = `
    -- ==========================================================================
    -- WORKOUT TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS workout SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS workout_name ON workout TYPE string;
    DEFINE FIELD IF NOT EXISTS sets ON workout TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS reps ON workout TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS weights ON workout TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS day ON workout TYPE string;
    DEFINE FIELD IF NOT EXISTS date ON workout TYPE string;
    DEFINE FIELD IF NOT EXISTS created ON workout TYPE datetime DEFAULT time::now();
    DEFINE INDEX IF NOT EXISTS workout_date ON workout FIELDS date;

    -- ==========================================================================
    -- DIET LOG TABLE (one row per plan slot: week, day, meal_type)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS diet_log SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS food_name ON diet_log TYPE string;
    DEFINE FIELD IF NOT EXISTS meal_type ON diet_log TYPE string;
    DEFINE FIELD IF NOT EXISTS week ON diet_log TYPE int;
    DEFINE FIELD IF NOT EXISTS day ON diet_log TYPE string;
    DEFINE FIELD IF NOT EXISTS calories ON diet_log TYPE int DEFAULT 0;
    DEFINE FIELD IF NOT EXISTS recipe_id ON diet_log TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS created ON diet_log TYPE datetime DEFAULT time::now();
    DEFINE INDEX IF NOT EXISTS diet_log_slot ON diet_log FIELDS week, day, meal_type;

    -- ==========================================================================
    -- FOOD RECIPE TABLE (rotating meal plan)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS food_recipe SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS week ON food_recipe TYPE int;
    DEFINE FIELD IF NOT EXISTS day ON food_recipe TYPE string;
    DEFINE FIELD IF NOT EXISTS day_of_month ON food_recipe TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS meal_type ON food_recipe TYPE string;
    DEFINE FIELD IF NOT EXISTS food_name ON food_recipe TYPE string;
    DEFINE FIELD IF NOT EXISTS ingredients ON food_recipe TYPE option<array<string>>;
    DEFINE FIELD IF NOT EXISTS servings ON food_recipe TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS instructions ON food_recipe TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS approx_calories ON food_recipe TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS protein ON food_recipe TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS fat ON food_recipe TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS carbs ON food_recipe TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS created ON food_recipe TYPE datetime DEFAULT time::now();
    DEFINE INDEX IF NOT EXISTS food_recipe_slot ON food_recipe FIELDS week, day, meal_type;

    -- ==========================================================================
    -- STEPS TABLE (one row per date)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS steps SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS day ON steps TYPE string;
    DEFINE FIELD IF NOT EXISTS steps ON steps TYPE int;
    DEFINE FIELD IF NOT EXISTS date ON steps TYPE string;
    DEFINE FIELD IF NOT EXISTS created ON steps TYPE datetime DEFAULT time::now();
    DEFINE INDEX IF NOT EXISTS steps_date ON steps FIELDS date UNIQUE;

    -- ==========================================================================
    -- BODY MEASUREMENT TABLE (columns updated in place on the latest row)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS body_measurement SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS weight ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS height ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS neck ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS chest ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS waist ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS stomach ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS shoulder_width ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS left_bicep ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS right_bicep ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS left_forearm ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS right_forearm ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS left_leg ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS right_leg ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS left_calf ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS right_calf ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS bench_max ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS overhead_press_max ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS rows_max ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS squats_max ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS deadlift_max ON body_measurement TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS created ON body_measurement TYPE datetime DEFAULT time::now();

    -- ==========================================================================
    -- REMINDER TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS reminder SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS reminder_name ON reminder TYPE string;
    DEFINE FIELD IF NOT EXISTS reminder_time ON reminder TYPE string;
    DEFINE FIELD IF NOT EXISTS day ON reminder TYPE string;
    DEFINE FIELD IF NOT EXISTS date ON reminder TYPE string;
    DEFINE FIELD IF NOT EXISTS enabled ON reminder TYPE bool DEFAULT true;
    DEFINE FIELD IF NOT EXISTS created ON reminder TYPE datetime DEFAULT time::now();
    DEFINE INDEX IF NOT EXISTS reminder_date ON reminder FIELDS date;

    -- ==========================================================================
    -- SHOPPING ITEM TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS shopping_item SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS grocery_name ON shopping_item TYPE string;
    DEFINE FIELD IF NOT EXISTS amount ON shopping_item TYPE string DEFAULT "";
    DEFINE FIELD IF NOT EXISTS price_rupees ON shopping_item TYPE float DEFAULT 0;
    DEFINE FIELD IF NOT EXISTS day ON shopping_item TYPE string;
    DEFINE FIELD IF NOT EXISTS date ON shopping_item TYPE string;
    DEFINE FIELD IF NOT EXISTS created ON shopping_item TYPE datetime DEFAULT time::now();

    -- ==========================================================================
    -- WISHLIST ITEM TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS wishlist_item SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS item_name ON wishlist_item TYPE string;
    DEFINE FIELD IF NOT EXISTS description ON wishlist_item TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS category ON wishlist_item TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS estimated_price ON wishlist_item TYPE option<float>;
    DEFINE FIELD IF NOT EXISTS priority ON wishlist_item TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS created ON wishlist_item TYPE datetime DEFAULT time::now();
`
