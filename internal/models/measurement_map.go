package models

import "strings"

// measurementColumns maps spoken body-part and lift names to measurement
// columns. Lookups are case-, space- and underscore-insensitive. The map is
// closed: a name outside it fails, it is never turned into a column
// dynamically.
var measurementColumns = map[string]string{
	"weight":           "weight",
	"height":           "height",
	"neck":             "neck",
	"chest":            "chest",
	"waist":            "waist",
	"stomach":          "stomach",
	"leftbicep":        "left_bicep",
	"rightbicep":       "right_bicep",
	"leftforearm":      "left_forearm",
	"rightforearm":     "right_forearm",
	"leftleg":          "left_leg",
	"rightleg":         "right_leg",
	"leftcalf":         "left_calf",
	"rightcalf":        "right_calf",
	"shoulder":         "shoulder_width",
	"shoulders":        "shoulder_width",
	"shoulderwidth":    "shoulder_width",
	"bench":            "bench_max",
	"benchpress":       "bench_max",
	"benchmax":         "bench_max",
	"overheadpress":    "overhead_press_max",
	"overheadpressmax": "overhead_press_max",
	"ohp":              "overhead_press_max",
	"shoulderpress":    "overhead_press_max",
	"row":              "rows_max",
	"rows":             "rows_max",
	"barbellrow":       "rows_max",
	"rowsmax":          "rows_max",
	"squat":            "squats_max",
	"squats":           "squats_max",
	"squatmax":         "squats_max",
	"squatsmax":        "squats_max",
	"deadlift":         "deadlift_max",
	"deadlifts":        "deadlift_max",
	"deadliftmax":      "deadlift_max",
}

// MeasurementColumn resolves a free-text measurement name to its backing
// column. The second return is false for names outside the closed map.
func MeasurementColumn(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	col, ok := measurementColumns[key]
	return col, ok
}

// MeasurementNames lists the accepted human names, for error messages.
const MeasurementNames = "weight, height, chest, waist, neck, stomach, shoulder, " +
	"left/right bicep, left/right forearm, left/right leg, left/right calf, " +
	"bench, overhead press, rows, squats, deadlift"
