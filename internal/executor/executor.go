// Package executor turns a classification into a store mutation. Handlers
// never return Go errors for user-level problems (missing fields, nothing
// matched); those become failed ActionResults with a corrective hint. Only
// infrastructure faults surface as errors inside the result.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/store"
)

// Executor dispatches classified mutations to per-entity handlers.
type Executor struct {
	store  store.Store
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates an Executor backed by st.
func New(st store.Store, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{store: st, logger: logger, now: time.Now}
}

type handler func(ctx context.Context, values map[string]any) models.ActionResult

// Execute runs the handler for the classified (entity, intent) pair.
// Override, when non-nil, replaces the classification's extracted values.
// Query and chat intents are read paths and never reach a handler.
func (e *Executor) Execute(ctx context.Context, cls models.Classification, override map[string]any) models.ActionResult {
	values := cls.ExtractedValues
	if override != nil {
		values = override
	}
	if values == nil {
		values = map[string]any{}
	}

	e.logger.Info("executing action", "intent", cls.Intent, "entity", cls.Entity, "method", cls.Method)

	if cls.Intent == models.IntentQuery || cls.Intent == models.IntentChat {
		return models.ActionResult{Success: true, Action: models.ActionQuery, Message: "No action needed for query"}
	}

	entityHandlers, ok := e.dispatch()[cls.Entity]
	if !ok {
		return models.Failure(fmt.Sprintf("Unknown entity: %s", cls.Entity))
	}
	h, ok := entityHandlers[cls.Intent]
	if !ok {
		return models.Failure(fmt.Sprintf("Unknown action: %s for %s", cls.Intent, cls.Entity))
	}

	result := h(ctx, values)
	if !result.Success {
		e.logger.Warn("action failed", "intent", cls.Intent, "entity", cls.Entity, "error", result.Error)
	}
	return result
}

// dispatch is the closed (entity, intent) handler table. Workout updates
// intentionally route to add: workout history is append-only. Book and anime
// have no mutation handlers and fall through to the unknown-entity failure.
func (e *Executor) dispatch() map[models.Entity]map[models.Intent]handler {
	return map[models.Entity]map[models.Intent]handler{
		models.EntityWorkout: {
			models.IntentAdd:    e.addWorkout,
			models.IntentUpdate: e.addWorkout,
			models.IntentDelete: e.deleteWorkout,
		},
		models.EntityDiet: {
			models.IntentAdd:    e.addDietLog,
			models.IntentDelete: e.deleteDietLog,
		},
		models.EntityRecipe: {
			models.IntentAdd:    e.addRecipe,
			models.IntentUpdate: e.updateRecipe,
			models.IntentDelete: e.deleteRecipe,
		},
		models.EntitySteps: {
			models.IntentAdd:    e.addSteps,
			models.IntentUpdate: e.updateSteps,
		},
		models.EntityMeasurement: {
			models.IntentAdd:    e.addMeasurement,
			models.IntentUpdate: e.updateMeasurement,
			models.IntentDelete: e.deleteMeasurement,
		},
		models.EntityReminder: {
			models.IntentAdd:    e.addReminder,
			models.IntentUpdate: e.updateReminder,
			models.IntentDelete: e.deleteReminder,
		},
		models.EntityShopping: {
			models.IntentAdd:    e.addShoppingItem,
			models.IntentUpdate: e.updateShoppingItem,
			models.IntentDelete: e.deleteShoppingItem,
		},
		models.EntityWishlist: {
			models.IntentAdd:    e.addWishlistItem,
			models.IntentUpdate: e.updateWishlistItem,
			models.IntentDelete: e.deleteWishlistItem,
		},
	}
}
