// Package llm provides LLM completion and embedding services using langchaingo.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/isha-go/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// CompleteOptions tunes a single completion call.
type CompleteOptions struct {
	// JSONMode constrains the model to emit a JSON document.
	JSONMode bool

	// Temperature for sampling. Classification calls run at 0.1 for
	// repeatable output.
	Temperature float64
}

// Completer is the completion surface consumed by the classifier and
// extractor. Satisfied by *Model; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompleteOptions) (string, error)
}

// Model wraps a langchaingo LLM for text generation.
type Model struct {
	llm       llms.Model
	modelName string
	logger    *slog.Logger
}

var _ Completer = (*Model)(nil)

// NewModel creates an Ollama-backed model from configuration.
func NewModel(cfg config.Config, logger *slog.Logger) (*Model, error) {
	model, err := ollama.New(
		ollama.WithModel(cfg.LLMModel),
		ollama.WithServerURL(cfg.OllamaHost),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama model: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Model{
		llm:       model,
		modelName: cfg.LLMModel,
		logger:    logger,
	}, nil
}

// Complete generates text for a system + user prompt pair.
func (m *Model) Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompleteOptions) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	callOpts := []llms.CallOption{
		llms.WithTemperature(opts.Temperature),
	}
	if opts.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	start := time.Now()
	response, err := m.llm.GenerateContent(ctx, messages, callOpts...)
	duration := time.Since(start)

	if err != nil {
		m.logger.Warn("completion failed", "model", m.modelName, "duration_ms", duration.Milliseconds(), "error", err)
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	m.logger.Debug("completion done", "model", m.modelName, "duration_ms", duration.Milliseconds())
	return response.Choices[0].Content, nil
}

// Model returns the LLM model name.
func (m *Model) Model() string {
	return m.modelName
}
