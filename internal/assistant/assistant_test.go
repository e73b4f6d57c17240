package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/raphaelgruber/isha-go/internal/classifier"
	"github.com/raphaelgruber/isha-go/internal/metrics"
	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// downEmbedder simulates an unreachable embedding backend, forcing the
// cascade past the vector tier.
type downEmbedder struct{}

func (downEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("backend down")
}

func (downEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("backend down")
}

func (downEmbedder) Model() string { return "down" }

func newTestAssistant(collector *metrics.Collector) *Assistant {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	matcher := classifier.NewMatcher(downEmbedder{}, logger)
	cls := classifier.New(matcher, nil, 0.65, logger)
	return New(cls, nil, collector, logger)
}

func TestClassifyRecordsMethod(t *testing.T) {
	collector := metrics.NewCollector()
	a := newTestAssistant(collector)

	cls := a.Classify(context.Background(), "remind me to call mom at 5pm")

	assert.Equal(t, models.MethodFallback, cls.Method)
	assert.Equal(t, models.EntityReminder, cls.Entity)

	snap := a.Stats()
	assert.Equal(t, int64(1), snap.Methods[string(models.MethodFallback)])
}

func TestExecuteWithoutBackend(t *testing.T) {
	a := newTestAssistant(nil)

	result := a.Execute(context.Background(), models.Classification{
		Intent: models.IntentAdd,
		Entity: models.EntityWorkout,
	}, nil)

	require.False(t, result.Success)
	assert.Equal(t, "no action backend configured", result.Error)
}

func TestHandleClassifiesThenExecutes(t *testing.T) {
	a := newTestAssistant(nil)

	cls, result := a.Handle(context.Background(), "hello there")

	assert.Equal(t, models.IntentChat, cls.Intent)
	// No executor wired, so the action side reports failure.
	assert.False(t, result.Success)
}

func TestNewDefaultsCollector(t *testing.T) {
	a := newTestAssistant(nil)
	require.NotNil(t, a.metrics)
	assert.NotNil(t, a.Stats().Methods)
}
