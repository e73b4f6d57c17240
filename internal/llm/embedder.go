package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/isha-go/internal/config"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Embedder is the embedding surface consumed by the vector matcher.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// OllamaEmbedder wraps a langchaingo embedder.
type OllamaEmbedder struct {
	model     embeddings.Embedder
	modelName string
	logger    *slog.Logger
}

var _ Embedder = (*OllamaEmbedder)(nil)

// NewEmbedder creates an Ollama-backed embedder from configuration.
func NewEmbedder(cfg config.Config, logger *slog.Logger) (*OllamaEmbedder, error) {
	client, err := ollama.New(
		ollama.WithModel(cfg.EmbeddingModel),
		ollama.WithServerURL(cfg.OllamaHost),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	model, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("create ollama embedder: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OllamaEmbedder{
		model:     model,
		modelName: cfg.EmbeddingModel,
		logger:    logger,
	}, nil
}

// Embed generates an embedding vector for text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	vectors, err := e.model.EmbedDocuments(ctx, []string{text})
	duration := time.Since(start)

	if err != nil {
		e.logger.Warn("embedding failed", "model", e.modelName, "text_len", len(text), "duration_ms", duration.Milliseconds(), "error", err)
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	e.logger.Debug("embedding done", "model", e.modelName, "text_len", len(text), "duration_ms", duration.Milliseconds())
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors, err := e.model.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("count mismatch: got %d, want %d", len(vectors), len(texts))
	}
	return vectors, nil
}

// Model returns the embedding model name.
func (e *OllamaEmbedder) Model() string {
	return e.modelName
}
