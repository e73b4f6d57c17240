// Package cli provides the command-line interface for isha.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/raphaelgruber/isha-go/internal/assistant"
	"github.com/raphaelgruber/isha-go/internal/classifier"
	"github.com/raphaelgruber/isha-go/internal/config"
	"github.com/raphaelgruber/isha-go/internal/executor"
	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/raphaelgruber/isha-go/internal/metrics"
	"github.com/raphaelgruber/isha-go/internal/store"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Shared state, set up in PersistentPreRunE.
	cfg       config.Config
	logger    *slog.Logger
	logFinish func() error
	collector *metrics.Collector
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "isha",
	Short: "Natural-language personal tracking assistant",
	Long: `Isha turns plain-English messages like "did 3 sets of bench press at 60kg"
or "remind me to take vitamins at 8am" into tracked workouts, meals, steps,
measurements, reminders, shopping items and wishlist entries.

Classification runs a three-tier cascade: vector similarity over an exemplar
corpus, a schema-constrained model call, and a deterministic keyword fallback
that always answers.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logFinish = config.SetupLogger(cfg.LogFile, level)
		collector = metrics.NewCollector()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFinish != nil {
			if err := logFinish(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to flush log file: %v\n", err)
			}
		}
	},
}

// buildClassifier assembles the cascade. No database is involved; commands
// that only classify stay runnable without SurrealDB.
func buildClassifier() (*classifier.Classifier, error) {
	embedder, err := llm.NewEmbedder(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init embedder: %w", err)
	}
	model, err := llm.NewModel(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init model: %w", err)
	}

	matcher := classifier.NewMatcher(embedder, logger)
	return classifier.New(matcher, model, cfg.MatchThreshold, logger).WithMetrics(collector), nil
}

// connectStore opens the SurrealDB connection and applies the schema.
func connectStore(ctx context.Context) (*store.Client, error) {
	client, err := store.NewClient(ctx, store.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := client.InitSchema(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return client, nil
}

// buildAssistant wires the full pipeline. The returned cleanup closes the
// database connection.
func buildAssistant(ctx context.Context) (*assistant.Assistant, func(), error) {
	cls, err := buildClassifier()
	if err != nil {
		return nil, nil, err
	}
	client, err := connectStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	exec := executor.New(client, logger)
	cleanup := func() { _ = client.Close(context.Background()) }
	return assistant.New(cls, exec, collector, logger), cleanup, nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(initCmd)
}
