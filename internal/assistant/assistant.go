// Package assistant wires the classification cascade and the action executor
// into the single surface callers use: interpret an utterance, then apply it.
package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/isha-go/internal/classifier"
	"github.com/raphaelgruber/isha-go/internal/executor"
	"github.com/raphaelgruber/isha-go/internal/metrics"
	"github.com/raphaelgruber/isha-go/internal/models"
)

// Assistant is the natural-language command pipeline. Classify and Execute
// are exposed separately so callers can inspect or correct a classification
// before anything is written; Handle runs both.
type Assistant struct {
	classifier *classifier.Classifier
	executor   *executor.Executor
	metrics    *metrics.Collector
	logger     *slog.Logger
}

// New creates an Assistant. executor may be nil for classify-only setups
// (no database); Execute then reports a failure instead of panicking.
func New(cls *classifier.Classifier, exec *executor.Executor, collector *metrics.Collector, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	return &Assistant{
		classifier: cls,
		executor:   exec,
		metrics:    collector,
		logger:     logger,
	}
}

// Classify interprets one utterance through the cascade. It always returns a
// usable classification; the regex tier guarantees an answer.
func (a *Assistant) Classify(ctx context.Context, utterance string) models.Classification {
	requestID := uuid.NewString()
	log := a.logger.With("request_id", requestID)

	start := time.Now()
	cls := a.classifier.Classify(ctx, utterance)
	duration := time.Since(start)

	a.metrics.RecordMethod(string(cls.Method))
	log.Info("classified",
		"intent", cls.Intent,
		"entity", cls.Entity,
		"method", cls.Method,
		"confidence", cls.Confidence,
		"duration_ms", duration.Milliseconds())
	return cls
}

// Execute applies a classification. Override, when non-nil, replaces the
// extracted values wholesale; callers use it to patch a classification after
// review.
func (a *Assistant) Execute(ctx context.Context, cls models.Classification, override map[string]any) models.ActionResult {
	if a.executor == nil {
		return models.Failure("no action backend configured")
	}

	start := time.Now()
	result := a.executor.Execute(ctx, cls, override)
	a.metrics.RecordTiming(metrics.OpExecute, time.Since(start))
	a.metrics.RecordAction(string(result.Action))
	return result
}

// Handle classifies the utterance and immediately executes the result.
func (a *Assistant) Handle(ctx context.Context, utterance string) (models.Classification, models.ActionResult) {
	cls := a.Classify(ctx, utterance)
	return cls, a.Execute(ctx, cls, nil)
}

// Stats returns the pipeline's accumulated metrics.
func (a *Assistant) Stats() metrics.Snapshot {
	return a.metrics.Snapshot()
}
