package corpus

import (
	"testing"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	examples, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	for _, ex := range examples {
		assert.NotEmpty(t, ex.Text)
		assert.True(t, models.ValidIntent(string(ex.Intent)), "intent %q in %q", ex.Intent, ex.Text)
		assert.True(t, models.ValidEntity(string(ex.Entity)), "entity %q in %q", ex.Entity, ex.Text)
	}
}

func TestLoadCoversMutableEntities(t *testing.T) {
	examples, err := Load()
	require.NoError(t, err)

	seen := map[models.Entity]bool{}
	for _, ex := range examples {
		seen[ex.Entity] = true
	}

	for _, entity := range []models.Entity{
		models.EntityWorkout, models.EntityDiet, models.EntityRecipe,
		models.EntityReminder, models.EntitySteps, models.EntityMeasurement,
		models.EntityShopping, models.EntityWishlist,
	} {
		assert.True(t, seen[entity], "corpus has no exemplars for %s", entity)
	}
}
