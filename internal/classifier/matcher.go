// Package classifier maps free-form utterances to (intent, entity) through a
// three-tier cascade: embedding nearest-neighbor, schema-constrained LLM,
// then a regex fallback that always answers.
package classifier

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/raphaelgruber/isha-go/internal/corpus"
	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/models"
	"golang.org/x/sync/singleflight"
)

// ErrNotReady is returned by Match while the corpus index is unavailable,
// typically because the embedding backend is unreachable. Callers fall
// through to the next cascade tier; this is never fatal.
var ErrNotReady = errors.New("corpus embedding index not ready")

// Match is a nearest-neighbor hit against the exemplar corpus.
type Match struct {
	Intent      models.Intent
	Entity      models.Entity
	Confidence  float64
	MatchedText string
}

type indexedExample struct {
	corpus.Example
	embedding []float32
}

// Matcher holds the corpus embedding index. The index is built exactly once;
// concurrent first callers share a single in-flight build. After a successful
// build it is read-only and safe for concurrent Match calls.
type Matcher struct {
	embedder llm.Embedder
	logger   *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	index []indexedExample
}

// NewMatcher creates a matcher over the embedded exemplar corpus.
func NewMatcher(embedder llm.Embedder, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{embedder: embedder, logger: logger}
}

// Ready reports whether the corpus index has been built.
func (m *Matcher) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index != nil
}

// Init builds the corpus embedding index if it does not exist yet.
// Safe to call from any number of goroutines; duplicate embedding work is
// collapsed via singleflight. A failed build leaves the matcher not-ready
// and a later call retries.
func (m *Matcher) Init(ctx context.Context) error {
	if m.Ready() {
		return nil
	}

	_, err, _ := m.group.Do("init", func() (any, error) {
		if m.Ready() {
			return nil, nil
		}

		examples, err := corpus.Load()
		if err != nil {
			return nil, err
		}

		m.logger.Info("building corpus embedding index", "examples", len(examples), "model", m.embedder.Model())

		texts := make([]string, len(examples))
		for i, ex := range examples {
			texts[i] = ex.Text
		}
		vectors, err := m.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			m.logger.Warn("corpus embedding failed, matcher stays not-ready", "error", err)
			return nil, err
		}

		index := make([]indexedExample, len(examples))
		for i, ex := range examples {
			index[i] = indexedExample{Example: ex, embedding: vectors[i]}
		}

		m.mu.Lock()
		m.index = index
		m.mu.Unlock()

		m.logger.Info("corpus embedding index ready", "examples", len(index))
		return nil, nil
	})
	return err
}

// Match embeds the utterance and returns the best corpus label when its
// cosine similarity clears threshold. A nil Match with nil error means no
// exemplar was close enough.
func (m *Matcher) Match(ctx context.Context, utterance string, threshold float64) (*Match, error) {
	m.mu.RLock()
	index := m.index
	m.mu.RUnlock()
	if index == nil {
		return nil, ErrNotReady
	}

	query, err := m.embedder.Embed(ctx, strings.ToLower(utterance))
	if err != nil {
		return nil, err
	}

	best := -1
	bestScore := -1.0
	for i := range index {
		if score := cosineSimilarity(query, index[i].embedding); score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 || bestScore < threshold {
		m.logger.Debug("no corpus match above threshold", "best_score", bestScore, "threshold", threshold)
		return nil, nil
	}

	hit := index[best]
	m.logger.Debug("corpus match", "text", hit.Text, "score", bestScore)
	return &Match{
		Intent:      hit.Intent,
		Entity:      hit.Entity,
		Confidence:  bestScore,
		MatchedText: hit.Text,
	}, nil
}

// TopMatches returns the n closest exemplars for an utterance, regardless of
// threshold. Useful for corpus debugging.
func (m *Matcher) TopMatches(ctx context.Context, utterance string, n int) ([]Match, error) {
	m.mu.RLock()
	index := m.index
	m.mu.RUnlock()
	if index == nil {
		return nil, ErrNotReady
	}

	query, err := m.embedder.Embed(ctx, strings.ToLower(utterance))
	if err != nil {
		return nil, err
	}

	matches := make([]Match, len(index))
	for i := range index {
		matches[i] = Match{
			Intent:      index[i].Intent,
			Entity:      index[i].Entity,
			Confidence:  cosineSimilarity(query, index[i].embedding),
			MatchedText: index[i].Text,
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Confidence > matches[j].Confidence })

	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n], nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return -1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return -1
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
