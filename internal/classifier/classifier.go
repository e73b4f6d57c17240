package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/isha-go/internal/extract"
	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/metrics"
	"github.com/raphaelgruber/isha-go/internal/models"
)

// Classifier runs the three-tier cascade. Each tier's failure is "no
// answer", not an exception; the regex fallback always answers, so Classify
// never fails outright.
type Classifier struct {
	matcher   *Matcher
	completer llm.Completer
	threshold float64
	logger    *slog.Logger
	collector *metrics.Collector

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Classifier. threshold is the minimum cosine similarity for
// the vector tier; completer may be nil, which disables both generative
// tiers (the deterministic paths still work).
func New(matcher *Matcher, completer llm.Completer, threshold float64, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		matcher:   matcher,
		completer: completer,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
}

// WithMetrics attaches a collector for per-tier timings. Optional; a nil
// collector disables recording.
func (c *Classifier) WithMetrics(collector *metrics.Collector) *Classifier {
	c.collector = collector
	return c
}

func (c *Classifier) record(op string, start time.Time) {
	if c.collector != nil {
		c.collector.RecordTiming(op, time.Since(start))
	}
}

// Classify interprets one utterance. The cascade runs strictly sequentially:
// vector match, then schema-constrained LLM, then regex fallback.
func (c *Classifier) Classify(ctx context.Context, utterance string) models.Classification {
	// Tier 1: nearest-neighbor over the exemplar corpus.
	if cls, ok := c.classifySemantic(ctx, utterance); ok {
		return cls
	}

	// Tier 2: one schema-constrained model call, no retry.
	if c.completer != nil {
		llmStart := time.Now()
		cls, err := classifyWithLLM(ctx, c.completer, utterance)
		c.record(metrics.OpLLMClassify, llmStart)
		if err == nil {
			c.logger.Info("llm classification", "intent", cls.Intent, "entity", cls.Entity, "confidence", cls.Confidence)
			return *cls
		}
		c.logger.Warn("llm classification failed, falling back", "error", err)
	}

	// Tier 3: regex fallback. Always answers.
	cls := fallbackClassify(utterance, c.now())
	c.logger.Info("fallback classification", "intent", cls.Intent, "entity", cls.Entity)
	return cls
}

func (c *Classifier) classifySemantic(ctx context.Context, utterance string) (models.Classification, bool) {
	indexStart := time.Now()
	if err := c.matcher.Init(ctx); err != nil {
		c.logger.Warn("corpus index unavailable", "error", err)
		return models.Classification{}, false
	}
	c.record(metrics.OpCorpusIndex, indexStart)

	matchStart := time.Now()
	match, err := c.matcher.Match(ctx, utterance, c.threshold)
	c.record(metrics.OpVectorMatch, matchStart)
	if err != nil {
		if !errors.Is(err, ErrNotReady) {
			c.logger.Warn("vector match failed", "error", err)
		}
		return models.Classification{}, false
	}
	if match == nil {
		return models.Classification{}, false
	}

	c.logger.Info("semantic match",
		"intent", match.Intent, "entity", match.Entity,
		"matched", match.MatchedText, "score", fmt.Sprintf("%.3f", match.Confidence))

	cls := models.Classification{
		Intent:          match.Intent,
		Entity:          match.Entity,
		ExtractedValues: map[string]any{},
		OriginalQuery:   utterance,
		Confidence:      match.Confidence,
		Method:          models.MethodSemantic,
	}

	// Query and chat need no structured values. Mutations do; the method
	// tag records whether the generative extractor had to step in.
	if cls.Mutating() {
		extractStart := time.Now()
		values, usedLLM := extract.Values(ctx, c.completer, c.logger, utterance, cls.Intent, cls.Entity)
		if usedLLM {
			c.record(metrics.OpLLMExtract, extractStart)
		}
		cls.ExtractedValues = values
		if usedLLM {
			cls.Method = models.MethodSemanticLLM
		} else {
			cls.Method = models.MethodSemanticRegex
		}
		cls.TimeReference = timeReferenceFrom(values)
	}

	return cls, true
}

// timeReferenceFrom pulls a temporal hint out of extracted values.
func timeReferenceFrom(values map[string]any) string {
	for _, key := range []string{"date", "time_reference"} {
		if s, ok := values[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
