package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string, _ llm.CompleteOptions) (string, error) {
	s.calls++
	return s.response, s.err
}

func newTestClassifier(embedder *fakeEmbedder, completer llm.Completer) *Classifier {
	c := New(NewMatcher(embedder, nil), completer, 0.65, nil)
	c.now = func() time.Time { return time.Date(2026, time.August, 27, 10, 0, 0, 0, time.UTC) }
	return c
}

func TestCascadeSemanticTier(t *testing.T) {
	// The corpus contains "add push ups" verbatim; the vector tier answers
	// and the deterministic extractor covers the values, so the model is
	// never consulted.
	completer := &stubCompleter{err: errors.New("must not be called")}
	c := newTestClassifier(&fakeEmbedder{}, completer)

	cls := c.Classify(context.Background(), "add push ups")

	assert.Equal(t, models.IntentAdd, cls.Intent)
	assert.Equal(t, models.EntityWorkout, cls.Entity)
	assert.Equal(t, models.MethodSemanticRegex, cls.Method)
	assert.Equal(t, "push ups", cls.ExtractedValues["workout_name"])
	assert.InDelta(t, 1.0, cls.Confidence, 1e-6)
	assert.Equal(t, 0, completer.calls)
}

func TestCascadeSemanticQueryNeedsNoValues(t *testing.T) {
	c := newTestClassifier(&fakeEmbedder{}, nil)

	cls := c.Classify(context.Background(), "show my workouts")

	assert.Equal(t, models.IntentQuery, cls.Intent)
	assert.Equal(t, models.EntityWorkout, cls.Entity)
	assert.Equal(t, models.MethodSemantic, cls.Method)
	assert.Empty(t, cls.ExtractedValues)
}

func TestCascadeSemanticWithLLMExtraction(t *testing.T) {
	// Vector tier labels the utterance, but the regexes cannot recover the
	// workout name, so the generative extractor fills it in.
	completer := &stubCompleter{response: `{"workout_name": "curls", "sets": 5}`}
	c := newTestClassifier(&fakeEmbedder{}, completer)

	cls := c.Classify(context.Background(), "i completed 5 sets of curls")

	require.Equal(t, models.EntityWorkout, cls.Entity)
	assert.Equal(t, models.MethodSemanticLLM, cls.Method)
	assert.Equal(t, "curls", cls.ExtractedValues["workout_name"])
	assert.Equal(t, 1, completer.calls)
}

func TestCascadeLLMTier(t *testing.T) {
	// Embedding backend down: the vector tier is skipped and the generative
	// classifier answers.
	completer := &stubCompleter{
		response: `{"intent": "add", "entity": "steps", "details": {"extracted_values": {"steps": 5000}, "time_reference": "today", "original_query": "x"}, "confidence": 0.93}`,
	}
	c := newTestClassifier(&fakeEmbedder{err: errors.New("ollama down")}, completer)

	cls := c.Classify(context.Background(), "walked five thousand steps")

	assert.Equal(t, models.IntentAdd, cls.Intent)
	assert.Equal(t, models.EntitySteps, cls.Entity)
	assert.Equal(t, models.MethodLLM, cls.Method)
	assert.Equal(t, "today", cls.TimeReference)
	assert.InDelta(t, 0.93, cls.Confidence, 1e-9)
	assert.EqualValues(t, 5000, cls.ExtractedValues["steps"])
}

func TestCascadeLLMConfidenceClamped(t *testing.T) {
	completer := &stubCompleter{
		response: `{"intent": "chat", "entity": "general", "details": {"extracted_values": {}}, "confidence": 3.5}`,
	}
	c := newTestClassifier(&fakeEmbedder{err: errors.New("down")}, completer)

	cls := c.Classify(context.Background(), "hi")

	assert.Equal(t, models.MethodLLM, cls.Method)
	assert.Equal(t, 1.0, cls.Confidence)
}

func TestCascadeLLMRejectsUnknownLabels(t *testing.T) {
	// Out-of-domain entity from the model is discarded; the regex tier takes
	// over instead.
	completer := &stubCompleter{
		response: `{"intent": "add", "entity": "pizza", "details": {"extracted_values": {}}, "confidence": 0.9}`,
	}
	c := newTestClassifier(&fakeEmbedder{err: errors.New("down")}, completer)

	cls := c.Classify(context.Background(), "i walked 5000 steps")

	assert.Equal(t, models.MethodFallback, cls.Method)
	assert.Equal(t, models.EntitySteps, cls.Entity)
	assert.Equal(t, 1, completer.calls)
}

func TestCascadeFallbackTier(t *testing.T) {
	completer := &stubCompleter{err: errors.New("model offline")}
	c := newTestClassifier(&fakeEmbedder{err: errors.New("embeddings offline")}, completer)

	cls := c.Classify(context.Background(), "remind me to call mom at 5pm")

	assert.Equal(t, models.MethodFallback, cls.Method)
	assert.Equal(t, models.IntentAdd, cls.Intent)
	assert.Equal(t, models.EntityReminder, cls.Entity)
	assert.Equal(t, fallbackConfidence, cls.Confidence)
	assert.Equal(t, "call mom", cls.ExtractedValues["reminder_name"])
}

func TestCascadeFallbackWithoutCompleter(t *testing.T) {
	c := newTestClassifier(&fakeEmbedder{err: errors.New("embeddings offline")}, nil)

	cls := c.Classify(context.Background(), "hello")

	assert.Equal(t, models.MethodFallback, cls.Method)
	assert.Equal(t, models.IntentChat, cls.Intent)
	assert.Equal(t, models.EntityGeneral, cls.Entity)
}
