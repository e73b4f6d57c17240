package executor

import (
	"context"
	"fmt"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/timeparse"
)

// --- Workouts -------------------------------------------------------------

// addWorkout handles both add and update: workout history is append-only,
// so "updating" logs a fresh entry.
func (e *Executor) addWorkout(ctx context.Context, values map[string]any) models.ActionResult {
	name := firstString(values, "workout_name", "name")
	if name == "" {
		return models.Failure(`Please tell me the workout name. Example: "add squats" or "did 3 sets of bench press"`)
	}

	date := timeparse.Date(firstString(values, "date"), e.now())
	w := models.Workout{
		WorkoutName: name,
		Sets:        intPtr(values, "sets"),
		Reps:        intPtr(values, "reps"),
		Weights:     floatPtr(values, "weights", "weight"),
		Day:         timeparse.DayName(date, e.now()),
		Date:        date,
	}

	row, err := e.store.InsertWorkout(ctx, w)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Added workout: %s", name),
	}
}

func (e *Executor) deleteWorkout(ctx context.Context, values map[string]any) models.ActionResult {
	id := firstString(values, "id")
	name := firstString(values, "name", "workout_name")
	if id == "" && name == "" {
		return models.Failure("No matching workout found")
	}

	rows, err := e.store.DeleteWorkouts(ctx, id, name)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching workout found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: fmt.Sprintf("Deleted %d workout(s)", len(rows)),
	}
}

// --- Steps ----------------------------------------------------------------

// stepCount digs the step number out of the value map, tolerating the
// nested form {"steps": {"steps": 5000}}.
func stepCount(values map[string]any) (int, map[string]any) {
	v := unwrap(values, "steps")
	n, _ := firstInt(v, "steps", "count", "step")
	return n, v
}

// addSteps increments the existing total for the date; update replaces it.
func (e *Executor) addSteps(ctx context.Context, values map[string]any) models.ActionResult {
	count, v := stepCount(values)
	if count <= 0 {
		return models.Failure("Please specify a valid number of steps")
	}

	date := timeparse.Date(firstString(v, "date"), e.now())
	day := timeparse.DayName(date, e.now())

	existing, err := e.store.FindStepsByDate(ctx, date)
	if err != nil {
		return models.Failure(err.Error())
	}
	if existing != nil {
		row, err := e.store.AddStepsToDate(ctx, date, count)
		if err != nil {
			return models.Failure(err.Error())
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionUpdated,
			Data:    row,
			Message: fmt.Sprintf("Added %d steps. New total: %d", count, row.Steps),
		}
	}

	row, err := e.store.InsertSteps(ctx, models.Steps{Day: day, Steps: count, Date: date})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Logged %d steps for %s", count, day),
	}
}

func (e *Executor) updateSteps(ctx context.Context, values map[string]any) models.ActionResult {
	count, v := stepCount(values)
	if count <= 0 {
		return models.Failure("Please specify a valid number of steps")
	}

	date := timeparse.Date(firstString(v, "date"), e.now())
	day := timeparse.DayName(date, e.now())

	existing, err := e.store.FindStepsByDate(ctx, date)
	if err != nil {
		return models.Failure(err.Error())
	}
	if existing != nil {
		row, err := e.store.SetStepsForDate(ctx, date, count)
		if err != nil {
			return models.Failure(err.Error())
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionUpdated,
			Data:    row,
			Message: fmt.Sprintf("Updated steps to %d", count),
		}
	}

	row, err := e.store.InsertSteps(ctx, models.Steps{Day: day, Steps: count, Date: date})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Set %d steps for %s", count, day),
	}
}

// --- Body measurements ----------------------------------------------------

func unknownMeasurement(name string) models.ActionResult {
	return models.Failure(fmt.Sprintf("Unknown measurement: %s. Valid: %s", name, models.MeasurementNames))
}

// addMeasurement sets one column on the latest snapshot, creating the first
// snapshot when none exists yet.
func (e *Executor) addMeasurement(ctx context.Context, values map[string]any) models.ActionResult {
	name := firstString(values, "name", "measurement_name")
	value, haveValue := firstNumber(values, "value", "measurement_value", "weight")
	if name == "" && haveValue {
		// A bare number with no body part is treated as a weight entry.
		name = "weight"
	}
	if name == "" || !haveValue {
		return models.Failure("Please specify the measurement and value. Example: \"add my neck 15\"")
	}

	column, ok := models.MeasurementColumn(name)
	if !ok {
		return unknownMeasurement(name)
	}

	latest, err := e.store.FindLatestMeasurement(ctx)
	if err != nil {
		return models.Failure(err.Error())
	}
	if latest == nil {
		row, err := e.store.InsertMeasurement(ctx, column, value)
		if err != nil {
			return models.Failure(err.Error())
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionAdded,
			Data:    row,
			Message: fmt.Sprintf("Added %s: %v", name, value),
		}
	}

	row, err := e.store.SetMeasurementColumn(ctx, latest.ID, column, &value)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: fmt.Sprintf("Set %s to %v", name, value),
	}
}

func (e *Executor) updateMeasurement(ctx context.Context, values map[string]any) models.ActionResult {
	name := firstString(values, "name", "measurement_name")
	if name == "" {
		return models.Failure("Measurement name is required (e.g., weight, height, chest)")
	}
	value, haveValue := firstNumber(values, "value", "measurement_value")
	if !haveValue {
		return models.Failure("Measurement value is required")
	}

	column, ok := models.MeasurementColumn(name)
	if !ok {
		return unknownMeasurement(name)
	}

	latest, err := e.store.FindLatestMeasurement(ctx)
	if err != nil {
		return models.Failure(err.Error())
	}
	if latest == nil {
		row, err := e.store.InsertMeasurement(ctx, column, value)
		if err != nil {
			return models.Failure(err.Error())
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionAdded,
			Data:    row,
			Message: fmt.Sprintf("Set %s to %v", name, value),
		}
	}

	row, err := e.store.SetMeasurementColumn(ctx, latest.ID, column, &value)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: fmt.Sprintf("Updated %s to %v", name, value),
	}
}

// deleteMeasurement clears one column on the latest snapshot; the row itself
// is never deleted.
func (e *Executor) deleteMeasurement(ctx context.Context, values map[string]any) models.ActionResult {
	name := firstString(values, "name", "measurement_name")
	if name == "" {
		return models.Failure(`Please specify which measurement to clear (e.g., "clear neck", "delete weight")`)
	}

	column, ok := models.MeasurementColumn(name)
	if !ok {
		return unknownMeasurement(name)
	}

	latest, err := e.store.FindLatestMeasurement(ctx)
	if err != nil {
		return models.Failure(err.Error())
	}
	if latest == nil {
		return models.Failure("No measurements found to clear")
	}

	current := measurementValue(latest, column)
	if current == nil {
		return models.ActionResult{
			Success: true,
			Action:  models.ActionNone,
			Message: fmt.Sprintf("%s is already empty", name),
		}
	}

	row, err := e.store.SetMeasurementColumn(ctx, latest.ID, column, nil)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    row,
		Message: fmt.Sprintf("Cleared %s (was %v)", name, *current),
	}
}

// measurementValue reads the column's current value off a snapshot.
func measurementValue(m *models.Measurement, column string) *float64 {
	switch column {
	case "weight":
		return m.Weight
	case "height":
		return m.Height
	case "neck":
		return m.Neck
	case "chest":
		return m.Chest
	case "waist":
		return m.Waist
	case "stomach":
		return m.Stomach
	case "shoulder_width":
		return m.ShoulderWidth
	case "left_bicep":
		return m.LeftBicep
	case "right_bicep":
		return m.RightBicep
	case "left_forearm":
		return m.LeftForearm
	case "right_forearm":
		return m.RightForearm
	case "left_leg":
		return m.LeftLeg
	case "right_leg":
		return m.RightLeg
	case "left_calf":
		return m.LeftCalf
	case "right_calf":
		return m.RightCalf
	case "bench_max":
		return m.BenchMax
	case "overhead_press_max":
		return m.OverheadPressMax
	case "rows_max":
		return m.RowsMax
	case "squats_max":
		return m.SquatsMax
	case "deadlift_max":
		return m.DeadliftMax
	}
	return nil
}
